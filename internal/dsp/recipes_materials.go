package dsp

import (
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/producer"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// materialRecipes covers smelting, refining and chemistry.
var materialRecipes = map[recipe.Recipe]RecipeDefinition{
	recipe.IronSmelting: {
		Ingredients:   []ItemStack{{item.IronOre, 1}},
		Time:          1,
		Results:       []ItemStack{{item.IronIngot, 1}},
		MadeIn:        producer.Smelter,
		Handcraftable: true,
		UnlockedBy:    tech.DysonSphereProgram,
	},
	recipe.CopperSmelting: {
		Ingredients:   []ItemStack{{item.CopperOre, 1}},
		Time:          1,
		Results:       []ItemStack{{item.CopperIngot, 1}},
		MadeIn:        producer.Smelter,
		Handcraftable: true,
		UnlockedBy:    tech.DysonSphereProgram,
	},
	recipe.StoneSmelting: {
		Ingredients:   []ItemStack{{item.StoneOre, 1}},
		Time:          1,
		Results:       []ItemStack{{item.StoneBrick, 1}},
		MadeIn:        producer.Smelter,
		Handcraftable: true,
		UnlockedBy:    tech.DysonSphereProgram,
	},
	recipe.SiliconSmelting: {
		Ingredients:   []ItemStack{{item.SiliconOre, 2}},
		Time:          2,
		Results:       []ItemStack{{item.HighPuritySilicon, 1}},
		MadeIn:        producer.Smelter,
		Handcraftable: true,
		UnlockedBy:    tech.SmeltingPurification,
	},
	recipe.GraphiteSmelting: {
		Ingredients:   []ItemStack{{item.CoalOre, 2}},
		Time:          2,
		Results:       []ItemStack{{item.EnergeticGraphite, 1}},
		MadeIn:        producer.Smelter,
		Handcraftable: true,
		UnlockedBy:    tech.SmeltingPurification,
	},
	recipe.PlasmaRefining: {
		Ingredients: []ItemStack{{item.CrudeOil, 2}},
		Time:        4,
		Results:     []ItemStack{{item.Hydrogen, 1}, {item.RefinedOil, 2}},
		MadeIn:      producer.OilRefinery,
		UnlockedBy:  tech.PlasmaExtractRefining,
	},
	recipe.Plastic: {
		Ingredients: []ItemStack{{item.EnergeticGraphite, 1}, {item.RefinedOil, 2}},
		Time:        3,
		Results:     []ItemStack{{item.Plastic, 1}},
		MadeIn:      producer.ChemicalPlant,
		UnlockedBy:  tech.BasicChemicalEngineering,
	},
	recipe.GrapheneFromFireIce: {
		Ingredients: []ItemStack{{item.FireIce, 2}},
		Time:        2,
		Results:     []ItemStack{{item.Graphene, 2}, {item.Hydrogen, 1}},
		MadeIn:      producer.ChemicalPlant,
		UnlockedBy:  tech.AppliedSuperconductor,
	},
	recipe.GrapheneFromGraphiteAndSulfuric: {
		Ingredients: []ItemStack{{item.EnergeticGraphite, 3}, {item.RefinedOil, 1}},
		Time:        3,
		Results:     []ItemStack{{item.Graphene, 2}},
		MadeIn:      producer.ChemicalPlant,
		UnlockedBy:  tech.AppliedSuperconductor,
	},
	recipe.MagnetSmelting: {
		Ingredients:   []ItemStack{{item.IronOre, 1}},
		Time:          1.5,
		Results:       []ItemStack{{item.Magnet, 1}},
		MadeIn:        producer.Smelter,
		Handcraftable: true,
		UnlockedBy:    tech.DysonSphereProgram,
	},
	recipe.Electromagnet: {
		Ingredients:   []ItemStack{{item.Magnet, 2}, {item.CopperIngot, 1}},
		Time:          1,
		Results:       []ItemStack{{item.Electromagnet, 2}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.DysonSphereProgram,
	},
	recipe.CrystalSiliconFromIngot: {
		Ingredients: []ItemStack{{item.HighPuritySilicon, 1}},
		Time:        2,
		Results:     []ItemStack{{item.CrystalSilicon, 1}},
		MadeIn:      producer.Smelter,
		UnlockedBy:  tech.CrystalSmelting,
	},
	recipe.CrystalSiliconFromFractal: {
		Ingredients: []ItemStack{{item.FractalSilicon, 1}},
		Time:        4,
		Results:     []ItemStack{{item.CrystalSilicon, 1}},
		MadeIn:      producer.Smelter,
		UnlockedBy:  tech.CrystalSmelting,
	},
	recipe.GlassSmelting: {
		Ingredients:   []ItemStack{{item.StoneOre, 2}},
		Time:          2,
		Results:       []ItemStack{{item.Glass, 1}},
		MadeIn:        producer.Smelter,
		Handcraftable: true,
		UnlockedBy:    tech.AutomaticMetallurgy,
	},
	recipe.DiamondFromGraphite: {
		Ingredients: []ItemStack{{item.EnergeticGraphite, 1}},
		Time:        2,
		Results:     []ItemStack{{item.Diamond, 1}},
		MadeIn:      producer.Smelter,
		UnlockedBy:  tech.CrystalSmelting,
	},
	recipe.DiamondFromKimberlite: {
		Ingredients: []ItemStack{{item.Kimberlite, 1}},
		Time:        2,
		Results:     []ItemStack{{item.Diamond, 1}},
		MadeIn:      producer.Smelter,
		UnlockedBy:  tech.CrystalSmelting,
	},
	recipe.XRayCracking: {
		Ingredients: []ItemStack{{item.RefinedOil, 1}, {item.Hydrogen, 2}},
		Time:        4,
		Results:     []ItemStack{{item.Graphene, 1}, {item.Hydrogen, 3}},
		MadeIn:      producer.OilRefinery,
		UnlockedBy:  tech.XRayCracking,
	},
	recipe.OrganicCrystalFromWood: {
		Ingredients: []ItemStack{{item.Log, 20}, {item.PlantFuel, 30}, {item.Water, 10}},
		Time:        6,
		Results:     []ItemStack{{item.OrganicCrystal, 1}},
		MadeIn:      producer.ChemicalPlant,
		UnlockedBy:  tech.PolymerChemicalEngineering,
	},
	recipe.OrganicCrystalFromPlastic: {
		Ingredients: []ItemStack{{item.Plastic, 2}, {item.RefinedOil, 1}, {item.Water, 1}},
		Time:        6,
		Results:     []ItemStack{{item.OrganicCrystal, 1}},
		MadeIn:      producer.ChemicalPlant,
		UnlockedBy:  tech.PolymerChemicalEngineering,
	},
	recipe.HydrogenFuelRod: {
		Ingredients:   []ItemStack{{item.TitaniumIngot, 1}, {item.Hydrogen, 5}},
		Time:          3,
		Results:       []ItemStack{{item.HydrogenFuelRod, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.HydrogenFuelRod,
	},
	recipe.SteelSmelting: {
		Ingredients: []ItemStack{{item.IronIngot, 3}},
		Time:        3,
		Results:     []ItemStack{{item.Steel, 1}},
		MadeIn:      producer.Smelter,
		UnlockedBy:  tech.SteelSmelting,
	},
	recipe.TitaniumSmelting: {
		Ingredients: []ItemStack{{item.TitaniumOre, 2}},
		Time:        2,
		Results:     []ItemStack{{item.TitaniumIngot, 1}},
		MadeIn:      producer.Smelter,
		UnlockedBy:  tech.TitaniumSmelting,
	},
	recipe.SiliconOreFromStone: {
		Ingredients: []ItemStack{{item.StoneOre, 10}},
		Time:        10,
		Results:     []ItemStack{{item.SiliconOre, 1}},
		MadeIn:      producer.Smelter,
		UnlockedBy:  tech.SmeltingPurification,
	},
	recipe.TitaniumAlloy: {
		Ingredients: []ItemStack{{item.TitaniumIngot, 4}, {item.Steel, 4}, {item.SulfuricAcid, 8}},
		Time:        12,
		Results:     []ItemStack{{item.TitaniumAlloy, 4}},
		MadeIn:      producer.Smelter,
		UnlockedBy:  tech.HighStrengthTitaniumAlloy,
	},
	recipe.TitaniumGlass: {
		Ingredients: []ItemStack{{item.Glass, 2}, {item.TitaniumIngot, 2}, {item.Water, 2}},
		Time:        5,
		Results:     []ItemStack{{item.TitaniumGlass, 2}},
		MadeIn:      producer.AssemblingMachine,
		UnlockedBy:  tech.HighStrengthGlass,
	},
	recipe.SulfuricAcid: {
		Ingredients: []ItemStack{{item.RefinedOil, 6}, {item.StoneOre, 8}, {item.Water, 4}},
		Time:        6,
		Results:     []ItemStack{{item.SulfuricAcid, 4}},
		MadeIn:      producer.ChemicalPlant,
		UnlockedBy:  tech.BasicChemicalEngineering,
	},
	recipe.CarbonNanotube: {
		Ingredients: []ItemStack{{item.Graphene, 3}, {item.TitaniumIngot, 1}},
		Time:        4,
		Results:     []ItemStack{{item.CarbonNanotube, 2}},
		MadeIn:      producer.ChemicalPlant,
		UnlockedBy:  tech.HighStrengthMaterial,
	},
	recipe.CarbonNanotubeFromStalagmite: {
		Ingredients: []ItemStack{{item.SpiniformStalagmiteCrystal, 6}},
		Time:        4,
		Results:     []ItemStack{{item.CarbonNanotube, 2}},
		MadeIn:      producer.ChemicalPlant,
		UnlockedBy:  tech.HighStrengthMaterial,
	},
	recipe.DeuteriumFractionation: {
		Ingredients: []ItemStack{{item.Hydrogen, 1}},
		Time:        0.017,
		Results:     []ItemStack{{item.Deuterium, 0.01}, {item.Hydrogen, 0.99}},
		MadeIn:      producer.Fractionator,
		UnlockedBy:  tech.DeuteriumFractionation,
	},
	recipe.DeuteriumFromCollider: {
		Ingredients: []ItemStack{{item.Hydrogen, 10}},
		Time:        2.5,
		Results:     []ItemStack{{item.Deuterium, 5}},
		MadeIn:      producer.MiniatureParticleCollider,
		UnlockedBy:  tech.MiniatureParticleCollider,
	},
	recipe.Antimatter: {
		Ingredients: []ItemStack{{item.CriticalPhoton, 2}},
		Time:        2,
		Results:     []ItemStack{{item.Antimatter, 2}, {item.Hydrogen, 2}},
		MadeIn:      producer.MiniatureParticleCollider,
		UnlockedBy:  tech.ControlledAnnihilationReaction,
	},
	recipe.StrangeMatter: {
		Ingredients: []ItemStack{{item.ParticleContainer, 2}, {item.IronIngot, 2}, {item.Deuterium, 10}},
		Time:        8,
		Results:     []ItemStack{{item.StrangeMatter, 1}},
		MadeIn:      producer.MiniatureParticleCollider,
		UnlockedBy:  tech.StrangeMatter,
	},
	recipe.CriticalPhoton: {
		Ingredients: []ItemStack{},
		Time:        10,
		Results:     []ItemStack{{item.CriticalPhoton, 1}},
		MadeIn:      producer.RayReceiver,
		UnlockedBy:  tech.DiracInversionMechanism,
	},
}
