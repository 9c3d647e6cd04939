package archive

import (
	"errors"
	"fmt"

	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
	"github.com/gamma-delta/center-brain-archive/internal/enum"
)

// Verify checks the cross-linking invariants of a compiled or decoded
// archive: every map is total, every entry names its own key, prerequisite and postrequisite edges mirror
// each other with multiplicity, and each usage index lists a recipe exactly
// as many times as the recipe names the item.
func (a *Archive) Verify() error {
	if a.TechTree.Len() != tech.Set.Len() ||
		a.Recipes.Len() != recipe.Set.Len() ||
		a.ProductionMethods.Len() != item.Set.Len() ||
		a.ConsumptionMethods.Len() != item.Set.Len() {
		return &IntegrityError{Subject: "archive", Err: ErrIncomplete}
	}

	var errs []error

	type edge struct{ from, to tech.Technology }
	forward := make(map[edge]int)
	backward := make(map[edge]int)
	for t, entry := range a.TechTree.All() {
		if entry.Tech != t {
			errs = append(errs, &IntegrityError{
				Subject: "technology " + t.String(),
				Field:   "tech",
				Err:     fmt.Errorf("%w: entry names %s", ErrIncomplete, entry.Tech),
			})
		}
		for _, p := range entry.Prereqs {
			forward[edge{t, p}]++
		}
		for _, q := range entry.Postreqs {
			backward[edge{q, t}]++
		}
	}
	for _, t := range tech.All() {
		for _, u := range tech.All() {
			e := edge{t, u}
			if forward[e] != backward[e] {
				errs = append(errs, &IntegrityError{
					Subject: "technology " + t.String(),
					Field:   "prereqs",
					Err: fmt.Errorf("%w: requires %s %d time(s) but is its postreq %d time(s)",
						ErrAsymmetricEdge, u, forward[e], backward[e]),
				})
			}
		}
	}

	wantMade := make(map[usage]int)
	wantUsed := make(map[usage]int)
	for r, def := range a.Recipes.All() {
		if def.Recipe != r {
			errs = append(errs, &IntegrityError{
				Subject: "recipe " + r.String(),
				Field:   "recipe",
				Err:     fmt.Errorf("%w: entry names %s", ErrRecipeMismatch, def.Recipe),
			})
		}
		for _, s := range def.Results {
			wantMade[usage{s.Item, r}]++
		}
		for _, s := range def.Ingredients {
			wantUsed[usage{s.Item, r}]++
		}
	}
	errs = append(errs, checkIndex("production_methods", a.ProductionMethods, wantMade)...)
	errs = append(errs, checkIndex("consumption_methods", a.ConsumptionMethods, wantUsed)...)

	return errors.Join(errs...)
}

type usage struct {
	item   item.Item
	recipe recipe.Recipe
}

// checkIndex compares a usage index with the counts derived from the recipes.
func checkIndex(name string, index enum.Map[item.Item, []recipe.Recipe], want map[usage]int) []error {
	got := make(map[usage]int)
	for i, rs := range index.All() {
		for _, r := range rs {
			got[usage{i, r}]++
		}
	}
	var errs []error
	for _, i := range item.All() {
		for _, r := range recipe.All() {
			u := usage{i, r}
			if got[u] != want[u] {
				errs = append(errs, &IntegrityError{
					Subject: "item " + i.String(),
					Field:   name,
					Err:     fmt.Errorf("%w: %s listed %d time(s), recipe names the item %d time(s)", ErrUnsoundIndex, r, got[u], want[u]),
				})
			}
		}
	}
	return errs
}
