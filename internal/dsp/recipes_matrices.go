package dsp

import (
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/producer"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// matrixRecipes are the research matrices, all made in a matrix lab.
var matrixRecipes = map[recipe.Recipe]RecipeDefinition{
	recipe.ElectromagneticMatrix: {
		Ingredients: []ItemStack{{item.Electromagnet, 1}, {item.CircuitBoard, 1}},
		Time:        3,
		Results:     []ItemStack{{item.ElectromagneticMatrix, 1}},
		MadeIn:      producer.MatrixLab,
		UnlockedBy:  tech.ElectromagneticMatrix,
	},
	recipe.EnergyMatrix: {
		Ingredients: []ItemStack{{item.EnergeticGraphite, 2}, {item.Hydrogen, 2}},
		Time:        6,
		Results:     []ItemStack{{item.EnergyMatrix, 1}},
		MadeIn:      producer.MatrixLab,
		UnlockedBy:  tech.EnergyMatrix,
	},
	recipe.StructureMatrix: {
		Ingredients: []ItemStack{{item.Diamond, 1}, {item.TitaniumCrystal, 1}},
		Time:        8,
		Results:     []ItemStack{{item.StructureMatrix, 1}},
		MadeIn:      producer.MatrixLab,
		UnlockedBy:  tech.StructureMatrix,
	},
	recipe.InformationMatrix: {
		Ingredients: []ItemStack{{item.Processor, 2}, {item.ParticleBroadband, 1}},
		Time:        10,
		Results:     []ItemStack{{item.InformationMatrix, 1}},
		MadeIn:      producer.MatrixLab,
		UnlockedBy:  tech.InformationMatrix,
	},
	recipe.GravityMatrix: {
		Ingredients: []ItemStack{{item.GravitonLens, 1}, {item.QuantumChip, 1}},
		Time:        24,
		Results:     []ItemStack{{item.GravityMatrix, 2}},
		MadeIn:      producer.MatrixLab,
		UnlockedBy:  tech.GravityMatrix,
	},
	recipe.UniverseMatrix: {
		Ingredients: []ItemStack{{item.ElectromagneticMatrix, 1}, {item.EnergyMatrix, 1}, {item.StructureMatrix, 1}, {item.InformationMatrix, 1}, {item.GravityMatrix, 1}, {item.Antimatter, 1}},
		Time:        15,
		Results:     []ItemStack{{item.UniverseMatrix, 1}},
		MadeIn:      producer.MatrixLab,
		UnlockedBy:  tech.UniverseMatrix,
	},
}
