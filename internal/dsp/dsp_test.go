package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/producer"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

func TestEveryRecipeHasADefinition(t *testing.T) {
	t.Parallel()

	for _, r := range recipe.All() {
		def, ok := Definition(r)
		if !assert.Truef(t, ok, "recipe %s has no definition", r) {
			continue
		}
		assert.Equal(t, r, def.Recipe)
	}
	assert.Len(t, recipeTable, recipe.Set.Len())
}

func TestDefinitionsReferenceKnownMembers(t *testing.T) {
	t.Parallel()

	for _, r := range recipe.All() {
		def, ok := Definition(r)
		require.True(t, ok)
		assert.Truef(t, producer.Set.Contains(def.MadeIn), "%s: made_in %d", r, def.MadeIn)
		assert.Truef(t, tech.Set.Contains(def.UnlockedBy), "%s: unlocked_by %d", r, def.UnlockedBy)
		assert.Truef(t, def.Time > 0 && !math.IsInf(def.Time, 0), "%s: time %v", r, def.Time)
		for _, s := range append(def.Ingredients, def.Results...) {
			assert.Truef(t, item.Set.Contains(s.Item), "%s: item %d", r, s.Item)
			assert.Truef(t, s.Count >= 0, "%s: count %v", r, s.Count)
		}
		assert.NotEmptyf(t, def.Results, "%s yields nothing", r)
	}
}

func TestDefinitionReturnsCopies(t *testing.T) {
	t.Parallel()

	def, ok := Definition(recipe.IronSmelting)
	require.True(t, ok)
	def.Ingredients[0].Count = 99

	again, _ := Definition(recipe.IronSmelting)
	assert.Equal(t, 1.0, again.Ingredients[0].Count)
}

func TestCuratedRecipes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    recipe.Recipe
		want RecipeDefinition
	}{
		{
			name: "iron smelting",
			r:    recipe.IronSmelting,
			want: RecipeDefinition{
				Recipe:        recipe.IronSmelting,
				Ingredients:   []ItemStack{{item.IronOre, 1}},
				Time:          1,
				Results:       []ItemStack{{item.IronIngot, 1}},
				MadeIn:        producer.Smelter,
				Handcraftable: true,
				UnlockedBy:    tech.DysonSphereProgram,
			},
		},
		{
			name: "deuterium fractionation keeps both outputs",
			r:    recipe.DeuteriumFractionation,
			want: RecipeDefinition{
				Recipe:      recipe.DeuteriumFractionation,
				Ingredients: []ItemStack{{item.Hydrogen, 1}},
				Time:        0.017,
				Results:     []ItemStack{{item.Deuterium, 0.01}, {item.Hydrogen, 0.99}},
				MadeIn:      producer.Fractionator,
				UnlockedBy:  tech.DeuteriumFractionation,
			},
		},
		{
			name: "gas giant collection has a zero-count deuterium result",
			r:    recipe.GasGiantCollection,
			want: RecipeDefinition{
				Recipe:      recipe.GasGiantCollection,
				Ingredients: []ItemStack{},
				Time:        1,
				Results:     []ItemStack{{item.Hydrogen, 1}, {item.Deuterium, 0}},
				MadeIn:      producer.OrbitCollector,
				UnlockedBy:  tech.GasGiantsExplotiation,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Definition(tt.r)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltinSource(t *testing.T) {
	t.Parallel()

	var src Builtin
	_, ok := src.Recipe(recipe.Recipe(-1))
	assert.False(t, ok)
	assert.Equal(t,
		[]tech.Technology{tech.FluidStorageEncapsulation, tech.HighEfficiencyPlasmaControl},
		src.Prerequisites(tech.PlasmaExtractRefining))
}

func TestMergeTablesRejectsDuplicates(t *testing.T) {
	t.Parallel()

	a := map[recipe.Recipe]RecipeDefinition{recipe.Gear: {}}
	b := map[recipe.Recipe]RecipeDefinition{recipe.Gear: {}}
	assert.Panics(t, func() { mergeTables(a, b) })
}

func TestEnumerationNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 12, producer.Set.Len())
	assert.Equal(t, "DysonSphereProgram", tech.Root.String())
	assert.Equal(t, tech.Technology(0), tech.Root)
	assert.Equal(t, "StoneBrick", item.StoneBrick.String())
	assert.Equal(t, "GasGiantsExplotiation", tech.GasGiantsExplotiation.String())

	i, err := item.Parse("Kimberlite")
	require.NoError(t, err)
	assert.Equal(t, item.Kimberlite, i)

	_, err = item.Parse("Stone")
	assert.Error(t, err)

	text, err := recipe.XRayCracking.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "XRayCracking", string(text))

	var p producer.Producer
	require.NoError(t, p.UnmarshalText([]byte("MatrixLab")))
	assert.Equal(t, producer.MatrixLab, p)
}

func TestPrerequisites(t *testing.T) {
	t.Parallel()

	assert.Empty(t, tech.Prerequisites(tech.Root))
	assert.NotNil(t, tech.Prerequisites(tech.Root))
	assert.Equal(t, []tech.Technology{tech.MiniatureParticleCollider},
		tech.Prerequisites(tech.MiniatureParticleCollider))

	got := tech.Prerequisites(tech.Electromagnetism)
	got[0] = tech.MissionCompleted
	assert.Equal(t, []tech.Technology{tech.DysonSphereProgram}, tech.Prerequisites(tech.Electromagnetism))

	for _, t2 := range tech.All() {
		if t2 == tech.Root {
			continue
		}
		assert.NotEmptyf(t, tech.Prerequisites(t2), "%s has no prerequisites", t2)
	}
}
