package archive

import (
	"errors"
	"fmt"
	"math"

	"github.com/gamma-delta/center-brain-archive/internal/dsp"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/producer"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
	"github.com/gamma-delta/center-brain-archive/internal/enum"
)

// Compile evaluates src over every recipe and technology and cross-links
// the result. Every recipe must have a definition. All problems found are
// reported together, joined, as *IntegrityError values.
func Compile(src Source) (*Archive, error) {
	var errs []error

	defs := make([]dsp.RecipeDefinition, recipe.Set.Len())
	for _, r := range recipe.All() {
		def, ok := src.Recipe(r)
		if !ok {
			errs = append(errs, &IntegrityError{Subject: subject(r), Err: ErrMissingRecipe})
			continue
		}
		errs = append(errs, checkDefinition(r, def)...)
		defs[r] = normalize(r, def)
	}

	prereqs := make([][]tech.Technology, tech.Set.Len())
	postreqs := make([][]tech.Technology, tech.Set.Len())
	for _, t := range tech.All() {
		ps := src.Prerequisites(t)
		prereqs[t] = append([]tech.Technology{}, ps...)
		for _, p := range ps {
			if !tech.Set.Contains(p) {
				errs = append(errs, &IntegrityError{
					Subject: "technology " + t.String(),
					Field:   "prereqs",
					Err:     fmt.Errorf("%w: %s", ErrUnknownTechnology, p),
				})
				continue
			}
			postreqs[p] = append(postreqs[p], t)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	production := make([][]recipe.Recipe, item.Set.Len())
	consumption := make([][]recipe.Recipe, item.Set.Len())
	for _, r := range recipe.All() {
		for _, s := range defs[r].Results {
			production[s.Item] = append(production[s.Item], r)
		}
		for _, s := range defs[r].Ingredients {
			consumption[s.Item] = append(consumption[s.Item], r)
		}
	}

	return &Archive{
		TechTree: enum.Build(tech.Set, func(t tech.Technology) TechnologyEntry {
			return TechnologyEntry{
				Tech:     t,
				Prereqs:  orEmpty(prereqs[t]),
				Postreqs: orEmpty(postreqs[t]),
			}
		}),
		Recipes: enum.Build(recipe.Set, func(r recipe.Recipe) dsp.RecipeDefinition {
			return defs[r]
		}),
		ProductionMethods: enum.Build(item.Set, func(i item.Item) []recipe.Recipe {
			return orEmpty(production[i])
		}),
		ConsumptionMethods: enum.Build(item.Set, func(i item.Item) []recipe.Recipe {
			return orEmpty(consumption[i])
		}),
	}, nil
}

// checkDefinition validates the references and quantities of one recipe.
func checkDefinition(r recipe.Recipe, def dsp.RecipeDefinition) []error {
	var errs []error
	add := func(field string, err error) {
		errs = append(errs, &IntegrityError{Subject: subject(r), Field: field, Err: err})
	}

	if def.Recipe != r {
		add("recipe", fmt.Errorf("%w: %s", ErrRecipeMismatch, def.Recipe))
	}
	if !producer.Set.Contains(def.MadeIn) {
		add("made_in", fmt.Errorf("%w: %s", ErrUnknownProducer, def.MadeIn))
	}
	if !tech.Set.Contains(def.UnlockedBy) {
		add("unlocked_by", fmt.Errorf("%w: %s", ErrUnknownTechnology, def.UnlockedBy))
	}
	if !validQuantity(def.Time) {
		add("time", fmt.Errorf("%w: %v", ErrInvalidQuantity, def.Time))
	}
	sides := []struct {
		field  string
		stacks []dsp.ItemStack
	}{
		{"ingredients", def.Ingredients},
		{"results", def.Results},
	}
	for _, side := range sides {
		for i, s := range side.stacks {
			name := fmt.Sprintf("%s[%d]", side.field, i)
			if !item.Set.Contains(s.Item) {
				add(name, fmt.Errorf("%w: %s", ErrUnknownItem, s.Item))
			}
			if !validQuantity(s.Count) {
				add(name, fmt.Errorf("%w: %v", ErrInvalidQuantity, s.Count))
			}
		}
	}
	return errs
}

func normalize(r recipe.Recipe, def dsp.RecipeDefinition) dsp.RecipeDefinition {
	def.Recipe = r
	def.Ingredients = append([]dsp.ItemStack{}, def.Ingredients...)
	def.Results = append([]dsp.ItemStack{}, def.Results...)
	return def
}

func validQuantity(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func subject(r recipe.Recipe) string {
	return "recipe " + r.String()
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
