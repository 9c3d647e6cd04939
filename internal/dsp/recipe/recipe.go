// Package recipe enumerates the recipes of the archive. Definitions live in
// package dsp; this package only names them.
package recipe

import "github.com/gamma-delta/center-brain-archive/internal/enum"

// Set describes the Recipe enumeration.
var Set = enum.NewSet[Recipe]("Recipe", names[:])

// All returns every recipe in declaration order.
func All() []Recipe {
	return Set.Members()
}

// Parse returns the recipe with the given name.
func Parse(name string) (Recipe, error) {
	return Set.Parse(name)
}

// String returns the declared name of the recipe.
func (r Recipe) String() string {
	return Set.String(r)
}

// MarshalText encodes the recipe as its declared name.
func (r Recipe) MarshalText() ([]byte, error) {
	return Set.MarshalText(r)
}

// UnmarshalText decodes a declared recipe name.
func (r *Recipe) UnmarshalText(text []byte) error {
	v, err := Set.Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
