// Package artifact renders the two build outputs, the archive JSON and its
// TypeScript declarations, and keeps them on disk as a consistent pair.
package artifact

import (
	"context"
	"fmt"

	"github.com/gamma-delta/center-brain-archive/internal/archive"
	"github.com/gamma-delta/center-brain-archive/internal/schema"
)

// Paths locates the two artifacts.
type Paths struct {
	JSON         string
	Declarations string
}

// Bundle holds the rendered contents of both artifacts.
type Bundle struct {
	JSON         []byte
	Declarations []byte
}

// Size returns the combined length of both artifacts in bytes.
func (b Bundle) Size() int {
	return len(b.JSON) + len(b.Declarations)
}

type file struct {
	path string
	data []byte
}

func pair(b Bundle, p Paths) []file {
	return []file{
		{path: p.JSON, data: b.JSON},
		{path: p.Declarations, data: b.Declarations},
	}
}

// Render verifies a and produces both artifacts in memory. Nothing is
// written, so a failing generator leaves the disk untouched.
func Render(ctx context.Context, a *archive.Archive, gen schema.Generator) (Bundle, error) {
	if err := a.Verify(); err != nil {
		return Bundle{}, fmt.Errorf("artifact: refusing to render: %w", err)
	}
	data, err := a.Encode()
	if err != nil {
		return Bundle{}, err
	}
	decl, err := gen.Generate(ctx, schema.ForArchive())
	if err != nil {
		return Bundle{}, fmt.Errorf("generating declarations: %w", err)
	}
	return Bundle{JSON: data, Declarations: decl}, nil
}
