package dsp

import (
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/producer"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// extractionRecipes take nothing and yield raw resources: veins, pumps,
// wells and gas giant orbit collection.
var extractionRecipes = map[recipe.Recipe]RecipeDefinition{
	recipe.IronOreVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.IronOre, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.CopperOreVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.CopperOre, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.StoneOreVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.StoneOre, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.CoalOreVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.CoalOre, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.SiliconOreVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.SiliconOre, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.TitaniumOreVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.TitaniumOre, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.KimberliteVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.Kimberlite, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.FireIceVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.FireIce, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.FractalSiliconVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.FractalSilicon, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.OpticalGratingCrystalVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.OpticalGratingCrystal, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.SpiniformStalagmiteCrystalVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.SpiniformStalagmiteCrystal, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.UnipolarMagnetVein: {
		Ingredients: []ItemStack{},
		Time:        2,
		Results:     []ItemStack{{item.UnipolarMagnet, 1}},
		MadeIn:      producer.MiningMachine,
		UnlockedBy:  tech.DysonSphereProgram,
	},
	recipe.WaterPumping: {
		Ingredients: []ItemStack{},
		Time:        1.2,
		Results:     []ItemStack{{item.Water, 1}},
		MadeIn:      producer.WaterPump,
		UnlockedBy:  tech.FluidStorageEncapsulation,
	},
	recipe.CrudeOilExtraction: {
		Ingredients: []ItemStack{},
		Time:        1,
		Results:     []ItemStack{{item.CrudeOil, 1}},
		MadeIn:      producer.OilExtractor,
		UnlockedBy:  tech.PlasmaExtractRefining,
	},
	recipe.GasGiantCollection: {
		Ingredients: []ItemStack{},
		Time:        1,
		Results:     []ItemStack{{item.Hydrogen, 1}, {item.Deuterium, 0}},
		MadeIn:      producer.OrbitCollector,
		UnlockedBy:  tech.GasGiantsExplotiation,
	},
}
