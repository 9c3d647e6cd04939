// Package dsp holds the hand-curated Dyson Sphere Program data: the recipe
// definitions and the built-in source the archive is compiled from.
//
// The enumerations themselves live in the item, producer, tech and recipe
// subpackages so that names shared between them (Processor is an item, a
// recipe and a technology) stay unqualified.
package dsp

import (
	"fmt"

	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/producer"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// ItemStack is a quantity of one item. Count is real and non-negative; zero
// marks an output that is possible but never happens in this recipe.
type ItemStack struct {
	Item  item.Item `json:"item"`
	Count float64   `json:"count"`
}

// RecipeDefinition describes one recipe. Field order is the key order of the
// emitted JSON.
type RecipeDefinition struct {
	Recipe        recipe.Recipe     `json:"recipe"`
	Ingredients   []ItemStack       `json:"ingredients"`
	Time          float64           `json:"time"`
	Results       []ItemStack       `json:"results"`
	MadeIn        producer.Producer `json:"made_in"`
	Handcraftable bool              `json:"handcraftable"`
	UnlockedBy    tech.Technology   `json:"unlocked_by"`
}

// Definition returns the curated definition of r, with Recipe set. The
// stack slices are copies.
func Definition(r recipe.Recipe) (RecipeDefinition, bool) {
	def, ok := recipeTable[r]
	if !ok {
		return RecipeDefinition{}, false
	}
	def.Recipe = r
	def.Ingredients = append([]ItemStack{}, def.Ingredients...)
	def.Results = append([]ItemStack{}, def.Results...)
	return def, true
}

// Builtin serves the curated tables.
type Builtin struct{}

// Recipe returns the curated definition of r.
func (Builtin) Recipe(r recipe.Recipe) (RecipeDefinition, bool) {
	return Definition(r)
}

// Prerequisites returns the declared prerequisites of t.
func (Builtin) Prerequisites(t tech.Technology) []tech.Technology {
	return tech.Prerequisites(t)
}

var recipeTable = mergeTables(
	materialRecipes,
	componentRecipes,
	matrixRecipes,
	buildingRecipes,
	extractionRecipes,
)

func mergeTables(tables ...map[recipe.Recipe]RecipeDefinition) map[recipe.Recipe]RecipeDefinition {
	merged := make(map[recipe.Recipe]RecipeDefinition)
	for _, table := range tables {
		for r, def := range table {
			if _, dup := merged[r]; dup {
				panic(fmt.Sprintf("dsp: recipe %s defined twice", r))
			}
			merged[r] = def
		}
	}
	return merged
}
