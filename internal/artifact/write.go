package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const fileMode = 0o644

// renameFile is replaced in tests to fail part way through a commit.
var renameFile = os.Rename

type staged struct {
	file
	tmp      string
	existed  bool
	previous []byte
}

// Write replaces both artifacts or neither. Each file is first written to a
// temporary sibling, then the temporaries are renamed into place. If any
// step fails the temporaries are removed and files already replaced get
// their previous contents back.
func Write(b Bundle, p Paths) error {
	var pending []*staged
	cleanup := func() {
		for _, s := range pending {
			os.Remove(s.tmp) //nolint:errcheck
		}
	}

	for _, f := range pair(b, p) {
		s, err := stage(f)
		if err != nil {
			cleanup()
			return err
		}
		pending = append(pending, s)
	}

	for i, s := range pending {
		if err := renameFile(s.tmp, s.path); err != nil {
			cleanup()
			restoreErr := restore(pending[:i])
			return errors.Join(fmt.Errorf("replacing %s: %w", s.path, err), restoreErr)
		}
	}
	return nil
}

func stage(f file) (*staged, error) {
	s := &staged{file: f}

	info, err := os.Stat(f.path)
	switch {
	case err == nil && info.IsDir():
		return nil, fmt.Errorf("writing %s: is a directory", f.path)
	case err == nil:
		s.existed = true
		if s.previous, err = os.ReadFile(f.path); err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("checking %s: %w", f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory for %s: %w", f.path, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("staging %s: %w", f.path, err)
	}
	s.tmp = tmp.Name()

	if _, err := tmp.Write(f.data); err != nil {
		tmp.Close()
		os.Remove(s.tmp) //nolint:errcheck
		return nil, fmt.Errorf("staging %s: %w", f.path, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		os.Remove(s.tmp) //nolint:errcheck
		return nil, fmt.Errorf("staging %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(s.tmp) //nolint:errcheck
		return nil, fmt.Errorf("staging %s: %w", f.path, err)
	}
	return s, nil
}

// restore undoes renames that already happened.
func restore(done []*staged) error {
	var errs []error
	for _, s := range done {
		if !s.existed {
			if err := os.Remove(s.path); err != nil {
				errs = append(errs, fmt.Errorf("removing %s: %w", s.path, err))
			}
			continue
		}
		if err := os.WriteFile(s.path, s.previous, fileMode); err != nil {
			errs = append(errs, fmt.Errorf("restoring %s: %w", s.path, err))
		}
	}
	return errors.Join(errs...)
}
