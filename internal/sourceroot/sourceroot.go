// Package sourceroot finds the checkout the binary was built from. The
// artifacts live next to the site sources, so a build that cannot see its
// own checkout has nowhere to write them.
package sourceroot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
)

// ErrReleaseBuild means the binary does not know where its checkout is,
// either because it was built with -trimpath or because the checkout has
// since moved.
var ErrReleaseBuild = errors.New("centerbrain must run from a development build of its own checkout")

// Locate returns the absolute path of the checkout root.
func Locate() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("%w: no caller information", ErrReleaseBuild)
	}
	return resolve(file, trimmed())
}

func trimmed() bool {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return false
	}
	for _, s := range info.Settings {
		if s.Key == "-trimpath" && s.Value == "true" {
			return true
		}
	}
	return false
}

// resolve walks from this file (internal/sourceroot/sourceroot.go) up to
// the module root.
func resolve(file string, trimpath bool) (string, error) {
	if trimpath {
		return "", fmt.Errorf("%w: built with -trimpath", ErrReleaseBuild)
	}
	if !filepath.IsAbs(file) {
		return "", fmt.Errorf("%w: source path %q is not absolute", ErrReleaseBuild, file)
	}
	root := filepath.Dir(filepath.Dir(filepath.Dir(file)))
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		return "", fmt.Errorf("%w: no go.mod in %s", ErrReleaseBuild, root)
	}
	return root, nil
}
