// Package export renders a compiled archive in formats other than the site
// artifact, for planners and spreadsheets that want the same data.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/gamma-delta/center-brain-archive/internal/archive"
)

// Format renders an archive as text.
type Format interface {
	// Render produces the full document.
	Render(a *archive.Archive) ([]byte, error)
}

// FormatByName returns the Format implementation for the given name.
// Supported names: json, yaml, toml.
func FormatByName(name string) (Format, error) {
	switch name {
	case "json":
		return &JSONFormat{}, nil
	case "yaml":
		return &YAMLFormat{}, nil
	case "toml":
		return &TOMLFormat{}, nil
	default:
		return nil, fmt.Errorf("unknown export format: %q", name)
	}
}

// FormatNames returns the list of all supported text format names.
func FormatNames() []string {
	return []string{"json", "yaml", "toml"}
}

// JSONFormat is the site artifact itself.
type JSONFormat struct{}

// Render returns the same bytes the generate command writes.
func (f *JSONFormat) Render(a *archive.Archive) ([]byte, error) {
	return a.Encode()
}

// TOMLFormat renders the archive as a TOML document. Tables come out with
// their keys sorted, so enumeration order is not preserved.
type TOMLFormat struct{}

// Render encodes the archive as TOML.
func (f *TOMLFormat) Render(a *archive.Archive) ([]byte, error) {
	data, err := a.Encode()
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("export: toml: %w", err)
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("export: toml: %w", err)
	}
	return out, nil
}
