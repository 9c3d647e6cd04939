// Package archive compiles the curated tables into the cross-linked
// document the site reads: the research tree with reverse edges, every
// recipe, and for each item the recipes that produce and consume it.
package archive

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gamma-delta/center-brain-archive/internal/dsp"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
	"github.com/gamma-delta/center-brain-archive/internal/enum"
)

// Source supplies the two relational inputs of a compilation.
type Source interface {
	// Recipe returns the definition of r, or false if there is none.
	Recipe(r recipe.Recipe) (dsp.RecipeDefinition, bool)
	// Prerequisites returns the declared prerequisites of t, in order.
	Prerequisites(t tech.Technology) []tech.Technology
}

// TechnologyEntry is one node of the research tree with its edges in both
// directions.
type TechnologyEntry struct {
	Tech     tech.Technology   `json:"tech"`
	Prereqs  []tech.Technology `json:"prereqs"`
	Postreqs []tech.Technology `json:"postreqs"`
}

// Archive is the compiled document. Every map is total over its
// enumeration and field order is the key order of the JSON output.
type Archive struct {
	TechTree           enum.Map[tech.Technology, TechnologyEntry]     `json:"tech_tree"`
	Recipes            enum.Map[recipe.Recipe, dsp.RecipeDefinition] `json:"recipes"`
	ProductionMethods  enum.Map[item.Item, []recipe.Recipe]           `json:"production_methods"`
	ConsumptionMethods enum.Map[item.Item, []recipe.Recipe]           `json:"consumption_methods"`
}

// Encode renders the archive as indented JSON with a trailing newline. The
// output depends only on the archive contents.
func (a *Archive) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("archive: encode: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a document produced by Encode. It is strict: every map must
// name each member of its enumeration exactly once and no object may carry
// fields beyond the declared ones.
func Decode(data []byte) (*Archive, error) {
	a := &Archive{
		TechTree:           enum.Empty[tech.Technology, TechnologyEntry](tech.Set),
		Recipes:            enum.Empty[recipe.Recipe, dsp.RecipeDefinition](recipe.Set),
		ProductionMethods:  enum.Empty[item.Item, []recipe.Recipe](item.Set),
		ConsumptionMethods: enum.Empty[item.Item, []recipe.Recipe](item.Set),
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(a); err != nil {
		return nil, fmt.Errorf("archive: decode: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("archive: decode: %w: trailing data", ErrIncomplete)
	}

	sections := []struct {
		key      string
		got, all int
	}{
		{"tech_tree", a.TechTree.Len(), tech.Set.Len()},
		{"recipes", a.Recipes.Len(), recipe.Set.Len()},
		{"production_methods", a.ProductionMethods.Len(), item.Set.Len()},
		{"consumption_methods", a.ConsumptionMethods.Len(), item.Set.Len()},
	}
	for _, s := range sections {
		if s.got != s.all {
			return nil, fmt.Errorf("archive: decode: %w: %s is missing", ErrIncomplete, s.key)
		}
	}
	return a, nil
}
