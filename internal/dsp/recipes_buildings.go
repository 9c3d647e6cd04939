package dsp

import (
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/producer"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// buildingRecipes produce placeable buildings. All of them can be crafted by
// hand.
var buildingRecipes = map[recipe.Recipe]RecipeDefinition{
	recipe.TeslaTower: {
		Ingredients:   []ItemStack{{item.IronIngot, 2}, {item.Electromagnet, 1}},
		Time:          1,
		Results:       []ItemStack{{item.TeslaTower, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.Electromagnetism,
	},
	recipe.WirelessPowerTower: {
		Ingredients:   []ItemStack{{item.TeslaTower, 1}, {item.PlasmaExciter, 3}},
		Time:          3,
		Results:       []ItemStack{{item.WirelessPowerTower, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.InterstellarPowerTransmission,
	},
	recipe.SatelliteSubstation: {
		Ingredients:   []ItemStack{{item.WirelessPowerTower, 1}, {item.SuperMagneticRing, 10}, {item.FrameMaterial, 2}},
		Time:          5,
		Results:       []ItemStack{{item.SatelliteSubstation, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.SatellitePowerDistributionSystem,
	},
	recipe.WindTurbine: {
		Ingredients:   []ItemStack{{item.IronIngot, 6}, {item.Gear, 1}, {item.Electromagnet, 3}},
		Time:          4,
		Results:       []ItemStack{{item.WindTurbine, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.Electromagnetism,
	},
	recipe.ThermalPowerStation: {
		Ingredients:   []ItemStack{{item.IronIngot, 10}, {item.StoneBrick, 4}, {item.Gear, 4}, {item.Electromagnet, 4}},
		Time:          5,
		Results:       []ItemStack{{item.ThermalPowerStation, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.ThermalPower,
	},
	recipe.SolarPanel: {
		Ingredients:   []ItemStack{{item.CopperIngot, 10}, {item.HighPuritySilicon, 10}, {item.CircuitBoard, 5}},
		Time:          6,
		Results:       []ItemStack{{item.SolarPanel, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.SolarCollection,
	},
	recipe.MiniFusionPowerStation: {
		Ingredients:   []ItemStack{{item.TitaniumAlloy, 12}, {item.SuperMagneticRing, 10}, {item.CarbonNanotube, 8}, {item.Processor, 4}},
		Time:          10,
		Results:       []ItemStack{{item.MiniFusionPowerStation, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.MiniFusionPowerGeneration,
	},
	recipe.Accumulator: {
		Ingredients:   []ItemStack{{item.IronIngot, 6}, {item.SuperMagneticRing, 1}, {item.CrystalSilicon, 6}},
		Time:          5,
		Results:       []ItemStack{{item.Accumulator, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.EnergyStorage,
	},
	recipe.EnergyExchanger: {
		Ingredients:   []ItemStack{{item.TitaniumAlloy, 40}, {item.Steel, 40}, {item.Processor, 40}, {item.ParticleContainer, 8}},
		Time:          15,
		Results:       []ItemStack{{item.EnergyExchanger, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.InterstellarPowerTransmission,
	},
	recipe.RayReceiver: {
		Ingredients:   []ItemStack{{item.Steel, 20}, {item.HighPuritySilicon, 20}, {item.PhotonCombiner, 10}, {item.Processor, 5}, {item.SuperMagneticRing, 20}},
		Time:          8,
		Results:       []ItemStack{{item.RayReceiver, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.RayReceiver,
	},
	recipe.ArtificialStar: {
		Ingredients:   []ItemStack{{item.TitaniumAlloy, 20}, {item.FrameMaterial, 20}, {item.AnnihilationConstraintSphere, 10}, {item.QuantumChip, 10}},
		Time:          30,
		Results:       []ItemStack{{item.ArtificialStar, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.ArtificialStar,
	},
	recipe.ConveyorMK1: {
		Ingredients:   []ItemStack{{item.IronIngot, 2}, {item.Gear, 1}},
		Time:          1,
		Results:       []ItemStack{{item.ConveyorMK1, 3}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.BasicLogisticsSystem,
	},
	recipe.ConveyorMK2: {
		Ingredients:   []ItemStack{{item.ConveyorMK1, 3}, {item.Electromagnet, 1}},
		Time:          1,
		Results:       []ItemStack{{item.ConveyorMK2, 3}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.ImprovedLogisticsSystem,
	},
	recipe.ConveyorMK3: {
		Ingredients:   []ItemStack{{item.ConveyorMK2, 3}, {item.SuperMagneticRing, 1}, {item.Graphene, 1}},
		Time:          1,
		Results:       []ItemStack{{item.ConveyorMK3, 3}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.HighEfficiencyLogisticsSystem,
	},
	recipe.Splitter: {
		Ingredients:   []ItemStack{{item.IronIngot, 3}, {item.Gear, 2}, {item.CircuitBoard, 1}},
		Time:          2,
		Results:       []ItemStack{{item.Splitter, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.BasicLogisticsSystem,
	},
	recipe.StorageMK1: {
		Ingredients:   []ItemStack{{item.IronIngot, 4}, {item.StoneBrick, 4}},
		Time:          2,
		Results:       []ItemStack{{item.StorageMK1, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.BasicLogisticsSystem,
	},
	recipe.StorageMK2: {
		Ingredients:   []ItemStack{{item.Steel, 8}, {item.StoneBrick, 8}},
		Time:          4,
		Results:       []ItemStack{{item.StorageMK2, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.ImprovedLogisticsSystem,
	},
	recipe.StorageTank: {
		Ingredients:   []ItemStack{{item.IronIngot, 8}, {item.StoneBrick, 4}, {item.Glass, 4}},
		Time:          2,
		Results:       []ItemStack{{item.StorageTank, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.FluidStorageEncapsulation,
	},
	recipe.PlanetaryLogisticsStation: {
		Ingredients:   []ItemStack{{item.Steel, 40}, {item.TitaniumIngot, 40}, {item.Processor, 40}, {item.ParticleContainer, 20}},
		Time:          20,
		Results:       []ItemStack{{item.PlanetaryLogisticsStation, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.PlanetaryLogisticsSystem,
	},
	recipe.InterstellarLogisticsStation: {
		Ingredients:   []ItemStack{{item.PlanetaryLogisticsStation, 1}, {item.TitaniumAlloy, 40}, {item.ParticleContainer, 20}},
		Time:          30,
		Results:       []ItemStack{{item.InterstellarLogisticsStation, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.InterstellarLogisticsSystem,
	},
	recipe.OrbitCollector: {
		Ingredients:   []ItemStack{{item.InterstellarLogisticsStation, 1}, {item.SuperMagneticRing, 50}, {item.ReinforcedThruster, 20}, {item.FullAccumulator, 20}},
		Time:          30,
		Results:       []ItemStack{{item.OrbitCollector, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.GasGiantsExplotiation,
	},
	recipe.EMRailEjector: {
		Ingredients:   []ItemStack{{item.Steel, 20}, {item.Gear, 20}, {item.Processor, 5}, {item.SuperMagneticRing, 10}},
		Time:          6,
		Results:       []ItemStack{{item.EMRailEjector, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.SolarSailOrbitSystem,
	},
	recipe.SorterMK1: {
		Ingredients:   []ItemStack{{item.IronIngot, 1}, {item.CircuitBoard, 1}},
		Time:          1,
		Results:       []ItemStack{{item.SorterMK1, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.BasicLogisticsSystem,
	},
	recipe.SorterMK2: {
		Ingredients:   []ItemStack{{item.SorterMK1, 2}, {item.Motor, 1}},
		Time:          1,
		Results:       []ItemStack{{item.SorterMK2, 2}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.ImprovedLogisticsSystem,
	},
	recipe.SorterMK3: {
		Ingredients:   []ItemStack{{item.SorterMK2, 2}, {item.ElectromagneticTurbine, 1}},
		Time:          1,
		Results:       []ItemStack{{item.SorterMK3, 2}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.HighEfficiencyLogisticsSystem,
	},
	recipe.MiningMachine: {
		Ingredients:   []ItemStack{{item.IronIngot, 4}, {item.CircuitBoard, 2}, {item.Electromagnet, 2}, {item.Gear, 2}},
		Time:          3,
		Results:       []ItemStack{{item.MiningMachine, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.Electromagnetism,
	},
	recipe.OilExtractor: {
		Ingredients:   []ItemStack{{item.Steel, 12}, {item.StoneBrick, 12}, {item.CircuitBoard, 6}, {item.PlasmaExciter, 4}},
		Time:          8,
		Results:       []ItemStack{{item.OilExtractor, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.PlasmaExtractRefining,
	},
	recipe.OilRefinery: {
		Ingredients:   []ItemStack{{item.Steel, 10}, {item.StoneBrick, 10}, {item.CircuitBoard, 6}, {item.PlasmaExciter, 6}},
		Time:          6,
		Results:       []ItemStack{{item.OilRefinery, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.PlasmaExtractRefining,
	},
	recipe.MiniatureParticleCollider: {
		Ingredients:   []ItemStack{{item.TitaniumAlloy, 20}, {item.FrameMaterial, 20}, {item.SuperMagneticRing, 50}, {item.Graphene, 10}, {item.Processor, 8}},
		Time:          15,
		Results:       []ItemStack{{item.MiniatureParticleCollider, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.MiniatureParticleCollider,
	},
	recipe.MatrixLab: {
		Ingredients:   []ItemStack{{item.IronIngot, 8}, {item.Glass, 4}, {item.CircuitBoard, 4}, {item.Electromagnet, 4}},
		Time:          3,
		Results:       []ItemStack{{item.MatrixLab, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.ElectromagneticMatrix,
	},
	recipe.VerticalLaunchingSilo: {
		Ingredients:   []ItemStack{{item.TitaniumAlloy, 80}, {item.FrameMaterial, 30}, {item.GravitonLens, 20}, {item.QuantumChip, 10}},
		Time:          30,
		Results:       []ItemStack{{item.VerticalLaunchingSilo, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.VerticalLaunchingSilo,
	},
	recipe.AssemblingMachineMK1: {
		Ingredients:   []ItemStack{{item.IronIngot, 4}, {item.Gear, 8}, {item.CircuitBoard, 4}},
		Time:          2,
		Results:       []ItemStack{{item.AssemblingMachineMK1, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.BasicAssemblingProcesses,
	},
	recipe.AssemblingMachineMK2: {
		Ingredients:   []ItemStack{{item.AssemblingMachineMK1, 1}, {item.Graphene, 8}, {item.Processor, 4}},
		Time:          3,
		Results:       []ItemStack{{item.AssemblingMachineMK2, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.HighSpeedAssemblingProcesses,
	},
	recipe.AssemblingMachineMK3: {
		Ingredients:   []ItemStack{{item.AssemblingMachineMK2, 1}, {item.ParticleBroadband, 8}, {item.QuantumChip, 2}},
		Time:          4,
		Results:       []ItemStack{{item.AssemblingMachineMK3, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.QuantumPrintingTechnology,
	},
	recipe.Smelter: {
		Ingredients:   []ItemStack{{item.IronIngot, 4}, {item.StoneBrick, 2}, {item.CircuitBoard, 4}, {item.Electromagnet, 2}},
		Time:          3,
		Results:       []ItemStack{{item.Smelter, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.AutomaticMetallurgy,
	},
	recipe.ChemicalPlant: {
		Ingredients:   []ItemStack{{item.Steel, 8}, {item.StoneBrick, 8}, {item.Glass, 8}, {item.CircuitBoard, 2}},
		Time:          5,
		Results:       []ItemStack{{item.ChemicalPlant, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.BasicChemicalEngineering,
	},
	recipe.Fractionator: {
		Ingredients:   []ItemStack{{item.Steel, 8}, {item.StoneBrick, 4}, {item.Glass, 4}, {item.Processor, 1}},
		Time:          3,
		Results:       []ItemStack{{item.Fractionator, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.DeuteriumFractionation,
	},
	recipe.WaterPump: {
		Ingredients:   []ItemStack{{item.IronIngot, 8}, {item.StoneBrick, 4}, {item.Motor, 4}, {item.CircuitBoard, 2}},
		Time:          4,
		Results:       []ItemStack{{item.WaterPump, 1}},
		MadeIn:        producer.AssemblingMachine,
		Handcraftable: true,
		UnlockedBy:    tech.FluidStorageEncapsulation,
	},
}
