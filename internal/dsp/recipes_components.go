package dsp

import (
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/producer"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// componentRecipes covers intermediate products, fuel rods, logistics
// carriers and Dyson sphere parts.
var componentRecipes = map[recipe.Recipe]RecipeDefinition{
	recipe.Gear: {
		Ingredients:   []ItemStack{{item.IronIngot, 1}},
		Time:          1,
		Results:       []ItemStack{{item.Gear, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.DysonSphereProgram,
	},
	recipe.CircuitBoard: {
		Ingredients:   []ItemStack{{item.IronIngot, 2}, {item.CopperIngot, 1}},
		Time:          1,
		Results:       []ItemStack{{item.CircuitBoard, 2}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.DysonSphereProgram,
	},
	recipe.Prism: {
		Ingredients:   []ItemStack{{item.Glass, 3}},
		Time:          2,
		Results:       []ItemStack{{item.Prism, 2}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.AutomaticMetallurgy,
	},
	recipe.Motor: {
		Ingredients:   []ItemStack{{item.IronIngot, 2}, {item.Gear, 1}, {item.Electromagnet, 1}},
		Time:          2,
		Results:       []ItemStack{{item.Motor, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.BasicAssemblingProcesses,
	},
	recipe.PlasmaExciter: {
		Ingredients:   []ItemStack{{item.Electromagnet, 4}, {item.Prism, 2}},
		Time:          2,
		Results:       []ItemStack{{item.PlasmaExciter, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.HighEfficiencyPlasmaControl,
	},
	recipe.ElectromagneticTurbine: {
		Ingredients:   []ItemStack{{item.Motor, 2}, {item.Electromagnet, 2}},
		Time:          2,
		Results:       []ItemStack{{item.ElectromagneticTurbine, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.ElectromagneticDrive,
	},
	recipe.SuperMagneticRing: {
		Ingredients:   []ItemStack{{item.ElectromagneticTurbine, 2}, {item.Magnet, 3}, {item.EnergeticGraphite, 1}},
		Time:          3,
		Results:       []ItemStack{{item.SuperMagneticRing, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.SuperMagneticFieldGenerator,
	},
	recipe.PhotonCombiner: {
		Ingredients:   []ItemStack{{item.Prism, 2}, {item.CircuitBoard, 1}},
		Time:          3,
		Results:       []ItemStack{{item.PhotonCombiner, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.PhotonFrequencyConversion,
	},
	recipe.PhotonCombinerFromGrating: {
		Ingredients:   []ItemStack{{item.OpticalGratingCrystal, 1}, {item.CircuitBoard, 1}},
		Time:          3,
		Results:       []ItemStack{{item.PhotonCombiner, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.PhotonFrequencyConversion,
	},
	recipe.MicrocrystallineComponent: {
		Ingredients:   []ItemStack{{item.HighPuritySilicon, 2}, {item.CopperIngot, 1}},
		Time:          2,
		Results:       []ItemStack{{item.MicrocrystallineComponent, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.SemiconductorMaterial,
	},
	recipe.Processor: {
		Ingredients:   []ItemStack{{item.CircuitBoard, 2}, {item.MicrocrystallineComponent, 2}},
		Time:          3,
		Results:       []ItemStack{{item.Processor, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.Processor,
	},
	recipe.Thruster: {
		Ingredients:   []ItemStack{{item.Steel, 2}, {item.CopperIngot, 3}},
		Time:          4,
		Results:       []ItemStack{{item.Thruster, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.Thruster,
	},
	recipe.ReinforcedThruster: {
		Ingredients:   []ItemStack{{item.TitaniumAlloy, 5}, {item.ElectromagneticTurbine, 5}},
		Time:          6,
		Results:       []ItemStack{{item.ReinforcedThruster, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.ReinforcedThruster,
	},
	recipe.TitaniumCrystal: {
		Ingredients:   []ItemStack{{item.OrganicCrystal, 1}, {item.TitaniumIngot, 3}},
		Time:          4,
		Results:       []ItemStack{{item.TitaniumCrystal, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.HighStrengthCrystal,
	},
	recipe.CasimirCrystal: {
		Ingredients:   []ItemStack{{item.TitaniumCrystal, 1}, {item.Graphene, 2}, {item.Hydrogen, 12}},
		Time:          4,
		Results:       []ItemStack{{item.CasimirCrystal, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.CasimirCrystal,
	},
	recipe.CasimirCrystalFromGrating: {
		Ingredients:   []ItemStack{{item.OpticalGratingCrystal, 8}, {item.Graphene, 2}, {item.Hydrogen, 12}},
		Time:          4,
		Results:       []ItemStack{{item.CasimirCrystal, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.CasimirCrystal,
	},
	recipe.ParticleBroadband: {
		Ingredients:   []ItemStack{{item.CarbonNanotube, 2}, {item.CrystalSilicon, 2}, {item.Plastic, 1}},
		Time:          8,
		Results:       []ItemStack{{item.ParticleBroadband, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.WaveFunctionInterference,
	},
	recipe.ParticleContainer: {
		Ingredients:   []ItemStack{{item.ElectromagneticTurbine, 2}, {item.CopperIngot, 2}, {item.Graphene, 2}},
		Time:          4,
		Results:       []ItemStack{{item.ParticleContainer, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.MagneticParticleTrap,
	},
	recipe.ParticleContainerFromUnipolar: {
		Ingredients:   []ItemStack{{item.UnipolarMagnet, 10}, {item.CopperIngot, 2}},
		Time:          4,
		Results:       []ItemStack{{item.ParticleContainer, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.MagneticParticleTrap,
	},
	recipe.GravitonLens: {
		Ingredients:   []ItemStack{{item.Diamond, 4}, {item.StrangeMatter, 1}},
		Time:          6,
		Results:       []ItemStack{{item.GravitonLens, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.GravitationalWaveRefraction,
	},
	recipe.PlaneFilter: {
		Ingredients:   []ItemStack{{item.CasimirCrystal, 1}, {item.TitaniumGlass, 2}},
		Time:          12,
		Results:       []ItemStack{{item.PlaneFilter, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.WaveFunctionInterference,
	},
	recipe.QuantumChip: {
		Ingredients:   []ItemStack{{item.Processor, 2}, {item.PlaneFilter, 2}},
		Time:          6,
		Results:       []ItemStack{{item.QuantumChip, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.QuantumChip,
	},
	recipe.AnnihilationConstraintSphere: {
		Ingredients:   []ItemStack{{item.ParticleContainer, 1}, {item.Processor, 1}},
		Time:          20,
		Results:       []ItemStack{{item.AnnihilationConstraintSphere, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.ControlledAnnihilationReaction,
	},
	recipe.SpaceWarper: {
		Ingredients:   []ItemStack{{item.GravitonLens, 1}},
		Time:          10,
		Results:       []ItemStack{{item.SpaceWarper, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.GravitationalWaveRefraction,
	},
	recipe.SpaceWarperFromMatrix: {
		Ingredients:   []ItemStack{{item.GravityMatrix, 1}},
		Time:          10,
		Results:       []ItemStack{{item.SpaceWarper, 8}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.GravitationalWaveRefraction,
	},
	recipe.Foundation: {
		Ingredients:   []ItemStack{{item.StoneBrick, 3}, {item.Steel, 1}},
		Time:          1,
		Results:       []ItemStack{{item.Foundation, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.EnvironmentModification,
	},
	recipe.LogisticsDrone: {
		Ingredients:   []ItemStack{{item.IronIngot, 5}, {item.Processor, 2}, {item.Thruster, 2}},
		Time:          4,
		Results:       []ItemStack{{item.LogisticsDrone, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.PlanetaryLogisticsSystem,
	},
	recipe.LogisticsVessel: {
		Ingredients:   []ItemStack{{item.TitaniumAlloy, 10}, {item.Processor, 10}, {item.ReinforcedThruster, 2}},
		Time:          6,
		Results:       []ItemStack{{item.LogisticsVessel, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.InterstellarLogisticsSystem,
	},
	recipe.DeuteronFuelRod: {
		Ingredients:   []ItemStack{{item.TitaniumAlloy, 1}, {item.Deuterium, 10}, {item.SuperMagneticRing, 1}},
		Time:          12,
		Results:       []ItemStack{{item.DeuteronFuelRod, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.MiniFusionPowerGeneration,
	},
	recipe.AntimatterFuelRod: {
		Ingredients:   []ItemStack{{item.Antimatter, 10}, {item.Hydrogen, 10}, {item.AnnihilationConstraintSphere, 1}, {item.TitaniumAlloy, 1}},
		Time:          24,
		Results:       []ItemStack{{item.AntimatterFuelRod, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.ControlledAnnihilationReaction,
	},
	recipe.FrameMaterial: {
		Ingredients:   []ItemStack{{item.CarbonNanotube, 4}, {item.TitaniumAlloy, 1}, {item.HighPuritySilicon, 1}},
		Time:          6,
		Results:       []ItemStack{{item.FrameMaterial, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.HighStrengthLightweightStructure,
	},
	recipe.DysonSphereComponent: {
		Ingredients:   []ItemStack{{item.FrameMaterial, 3}, {item.SolarSail, 3}, {item.Processor, 3}},
		Time:          8,
		Results:       []ItemStack{{item.DysonSphereComponent, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.VerticalLaunchingSilo,
	},
	recipe.SmallCarrierRocket: {
		Ingredients:   []ItemStack{{item.DysonSphereComponent, 2}, {item.DeuteronFuelRod, 4}, {item.QuantumChip, 2}},
		Time:          6,
		Results:       []ItemStack{{item.SmallCarrierRocket, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.VerticalLaunchingSilo,
	},
	recipe.SolarSail: {
		Ingredients:   []ItemStack{{item.Graphene, 1}, {item.PhotonCombiner, 1}},
		Time:          4,
		Results:       []ItemStack{{item.SolarSail, 2}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.SolarSailOrbitSystem,
	},
}
