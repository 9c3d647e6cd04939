package artifact

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gamma-delta/center-brain-archive/internal/archive"
	"github.com/gamma-delta/center-brain-archive/internal/schema"
)

// Drift describes an artifact whose contents on disk differ from a fresh
// render.
type Drift struct {
	Path    string
	Want    string // hash of the fresh render
	Got     string // hash on disk, empty when missing
	Missing bool
}

// HashBytes returns the SHA-256 digest of data as "sha256:<hex>".
func HashBytes(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}

// HashFile returns the SHA-256 digest of the file at path.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s for hash: %w", path, err)
	}
	return HashBytes(data), nil
}

// Check compares the artifacts on disk with b. It returns one Drift per
// stale or missing file, in JSON then declarations order.
func Check(b Bundle, p Paths) ([]Drift, error) {
	var drifts []Drift
	for _, f := range pair(b, p) {
		want := HashBytes(f.data)
		got, err := HashFile(f.path)
		if errors.Is(err, fs.ErrNotExist) {
			drifts = append(drifts, Drift{Path: f.path, Want: want, Missing: true})
			continue
		}
		if err != nil {
			return nil, err
		}
		if got != want {
			drifts = append(drifts, Drift{Path: f.path, Want: want, Got: got})
		}
	}
	return drifts, nil
}

// Conform checks that data is an archive document: it must decode strictly,
// keep its cross-links consistent and validate against the archive schema.
func Conform(data []byte) error {
	a, err := archive.Decode(data)
	if err != nil {
		return err
	}
	if err := a.Verify(); err != nil {
		return err
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("artifact: %w", err)
	}
	return schema.Validate(schema.ForArchive(), value)
}
