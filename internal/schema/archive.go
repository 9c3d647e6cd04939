package schema

import (
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/producer"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// RootTitle names the top-level type of the archive document.
const RootTitle = "AllDSPInfo"

// Definition names used by ForArchive.
const (
	DefItem             = "Item"
	DefProducer         = "Producer"
	DefRecipe           = "Recipe"
	DefTechnology       = "Technology"
	DefItemStack        = "ItemStack"
	DefRecipeDefinition = "RecipeDefinition"
	DefTechnologyEntry  = "TechnologyEntry"
	DefTechTree         = "EnumMap_of_Technology_to_TechnologyEntry"
	DefRecipes          = "EnumMap_of_Recipe_to_RecipeDefinition"
	DefItemUsages       = "EnumMap_of_Item_to_Array_of_Recipe"
)

// ForArchive describes the archive document. Every object, including each
// total mapping, requires all of its keys and forbids any others.
func ForArchive() *Schema {
	defs := &Properties{}
	defs.Set(DefTechTree, enumMap(
		"Research tree keyed by technology.",
		tech.Set.Names(), Ref(DefTechnologyEntry)))
	defs.Set(DefRecipes, enumMap(
		"Every recipe keyed by name.",
		recipe.Set.Names(), Ref(DefRecipeDefinition)))
	defs.Set(DefItemUsages, enumMap(
		"Recipes naming each item, in recipe declaration order.",
		item.Set.Names(), &Schema{Type: "array", Items: Ref(DefRecipe)}))

	defs.Set(DefTechnologyEntry, object("A technology with its prerequisites and the technologies that require it.",
		field{"tech", Ref(DefTechnology)},
		field{"prereqs", &Schema{Type: "array", Items: Ref(DefTechnology)}},
		field{"postreqs", &Schema{Type: "array", Items: Ref(DefTechnology)}},
	))
	defs.Set(DefRecipeDefinition, object("How to make something.",
		field{"recipe", Ref(DefRecipe)},
		field{"ingredients", &Schema{Type: "array", Items: Ref(DefItemStack)}},
		field{"time", &Schema{Type: "number", Format: "double", Minimum: zero(), Description: "Seconds per craft."}},
		field{"results", &Schema{Type: "array", Items: Ref(DefItemStack)}},
		field{"made_in", Ref(DefProducer)},
		field{"handcraftable", &Schema{Type: "boolean"}},
		field{"unlocked_by", Ref(DefTechnology)},
	))
	defs.Set(DefItemStack, object("A quantity of one item. A zero count marks a possible but unused output.",
		field{"item", Ref(DefItem)},
		field{"count", &Schema{Type: "number", Format: "double", Minimum: zero()}},
	))

	defs.Set(DefItem, &Schema{Type: "string", Enum: item.Set.Names()})
	defs.Set(DefProducer, &Schema{Type: "string", Enum: producer.Set.Names()})
	defs.Set(DefRecipe, &Schema{Type: "string", Enum: recipe.Set.Names()})
	defs.Set(DefTechnology, &Schema{Type: "string", Enum: tech.Set.Names()})

	root := object("",
		field{"tech_tree", Ref(DefTechTree)},
		field{"recipes", Ref(DefRecipes)},
		field{"production_methods", Ref(DefItemUsages)},
		field{"consumption_methods", Ref(DefItemUsages)},
	)
	root.Schema = Draft
	root.Title = RootTitle
	root.Definitions = defs
	return root
}

type field struct {
	name   string
	schema *Schema
}

func object(description string, fields ...field) *Schema {
	props := &Properties{}
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		props.Set(f.name, f.schema)
		required = append(required, f.name)
	}
	return &Schema{
		Description:          description,
		Type:                 "object",
		Required:             required,
		Properties:           props,
		AdditionalProperties: closed(),
	}
}

func enumMap(description string, keys []string, value *Schema) *Schema {
	fields := make([]field, len(keys))
	for i, k := range keys {
		fields[i] = field{k, value}
	}
	return object(description, fields...)
}

func zero() *float64 {
	v := 0.0
	return &v
}

func closed() *bool {
	v := false
	return &v
}
