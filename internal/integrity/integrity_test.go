package integrity

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamma-delta/center-brain-archive/internal/dsp"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// patched is the builtin data with some entries replaced.
type patched struct {
	dsp.Builtin
	recipes map[recipe.Recipe]dsp.RecipeDefinition
	missing map[recipe.Recipe]bool
	prereqs map[tech.Technology][]tech.Technology
}

func (p patched) Recipe(r recipe.Recipe) (dsp.RecipeDefinition, bool) {
	if p.missing[r] {
		return dsp.RecipeDefinition{}, false
	}
	if def, ok := p.recipes[r]; ok {
		return def, true
	}
	return p.Builtin.Recipe(r)
}

func (p patched) Prerequisites(t tech.Technology) []tech.Technology {
	if pre, ok := p.prereqs[t]; ok {
		return pre
	}
	return p.Builtin.Prerequisites(t)
}

func subjects(r *Report, c Category) []string {
	var out []string
	for _, f := range r.Findings {
		if f.Category == c {
			out = append(out, f.Subject)
		}
	}
	return out
}

func TestAuditBuiltin(t *testing.T) {
	t.Parallel()

	r := Audit(dsp.Builtin{})
	require.True(t, r.Valid(), "builtin data must compile: %+v", r.Findings)
	assert.Zero(t, r.Count(SeverityError))

	assert.Equal(t, []string{"technology MiniatureParticleCollider"}, subjects(r, CategorySelfPrerequisite))
	assert.Equal(t, []string{
		"technology MiniatureParticleCollider",
		"technology StrangeMatter",
		"technology GravitationalWaveRefraction",
		"technology QuantumPrintingTechnology",
		"technology GravityMatrix",
	}, sortedLike(subjects(r, CategoryUnreachableTech), tech.Set.Names(), "technology "))

	unreachable := subjects(r, CategoryUnreachableRecipe)
	assert.Len(t, unreachable, 8)
	assert.Contains(t, unreachable, "recipe DeuteriumFromCollider")

	unproduced := subjects(r, CategoryUnproduced)
	for _, it := range []item.Item{item.Log, item.PlantFuel, item.FullAccumulator} {
		assert.Contains(t, unproduced, "item "+it.String())
	}
	assert.NotContains(t, unproduced, "item Diamond")

	assert.Equal(t, []string{"recipe GasGiantCollection"}, subjects(r, CategoryZeroCountResult))
	assert.Empty(t, subjects(r, CategoryCycle))
	assert.Empty(t, subjects(r, CategoryCrossLink))
}

// sortedLike orders subjects by the position of their names in order.
func sortedLike(subjects, order []string, prefix string) []string {
	out := slices.Clone(subjects)
	slices.SortFunc(out, func(a, b string) int {
		return slices.Index(order, a[len(prefix):]) - slices.Index(order, b[len(prefix):])
	})
	return out
}

func TestAuditOrdersBySeverity(t *testing.T) {
	t.Parallel()

	r := Audit(patched{missing: map[recipe.Recipe]bool{recipe.Gear: true}})
	require.NotEmpty(t, r.Findings)
	for i := 1; i < len(r.Findings); i++ {
		assert.LessOrEqual(t, r.Findings[i-1].Severity, r.Findings[i].Severity)
	}
	assert.Equal(t, SeverityError, r.Findings[0].Severity)
}

func TestAuditCompileErrors(t *testing.T) {
	t.Parallel()

	bad, ok := dsp.Definition(recipe.IronSmelting)
	require.True(t, ok)
	bad.Time = -1
	bad.MadeIn = 99

	r := Audit(patched{
		recipes: map[recipe.Recipe]dsp.RecipeDefinition{recipe.IronSmelting: bad},
		missing: map[recipe.Recipe]bool{recipe.Gear: true},
	})

	assert.False(t, r.Valid())
	assert.Equal(t, []string{"recipe Gear"}, subjects(r, CategoryMissingRecipe))
	assert.Equal(t, []string{"recipe IronSmelting"}, subjects(r, CategoryInvalidQuantity))
	assert.Equal(t, []string{"recipe IronSmelting"}, subjects(r, CategoryUnknownReference))
	// Without an archive there is nothing to index.
	assert.Empty(t, subjects(r, CategoryUnproduced))
}

func TestAuditGraphAnomalies(t *testing.T) {
	t.Parallel()

	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()
		pre := tech.Prerequisites(tech.ElectromagneticDrive)
		require.NotEmpty(t, pre)

		r := Audit(patched{prereqs: map[tech.Technology][]tech.Technology{
			tech.ElectromagneticDrive: append(pre, pre[0]),
		}})
		assert.True(t, r.Valid())
		assert.Equal(t, []string{"technology ElectromagneticDrive"}, subjects(r, CategoryDuplicatePrereq))
	})

	t.Run("cycle", func(t *testing.T) {
		t.Parallel()
		// Electromagnetism is declared first, so the edge back to it from
		// ElectromagneticMatrix is the one that closes the loop.
		r := Audit(patched{prereqs: map[tech.Technology][]tech.Technology{
			tech.Electromagnetism: {tech.DysonSphereProgram, tech.ElectromagneticMatrix},
		}})
		assert.Equal(t, []string{"technology ElectromagneticMatrix"}, subjects(r, CategoryCycle))
		for _, f := range r.Findings {
			if f.Category == CategoryCycle {
				assert.Equal(t, SeverityWarning, f.Severity)
			}
		}
	})
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{SeverityInfo, "info"},
		{Severity(9), "severity(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}
