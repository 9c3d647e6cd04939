package item

// Item is anything that can occupy an inventory slot: raw resources,
// intermediates, science matrices and placeable buildings.
type Item int

// Items in declaration order, which is the key order of every item-keyed
// output.
const (
	IronOre Item = iota
	CopperOre
	StoneOre
	CoalOre
	SiliconOre
	TitaniumOre
	Water
	CrudeOil
	Hydrogen
	Deuterium
	Antimatter
	Kimberlite
	IronIngot
	CopperIngot
	StoneBrick
	EnergeticGraphite
	HighPuritySilicon
	TitaniumIngot
	SulfuricAcid
	RefinedOil
	HydrogenFuelRod
	DeuteronFuelRod
	AntimatterFuelRod
	FractalSilicon
	Magnet
	Electromagnet
	Glass
	Diamond
	CrystalSilicon
	TitaniumAlloy
	FireIce
	Plastic
	OrganicCrystal
	Graphene
	Thruster
	OpticalGratingCrystal
	Steel
	CircuitBoard
	Prism
	Motor
	MicrocrystallineComponent
	CasimirCrystal
	StrangeMatter
	TitaniumCrystal
	CarbonNanotube
	ReinforcedThruster
	SpiniformStalagmiteCrystal
	Gear
	PlasmaExciter
	PhotonCombiner
	ElectromagneticTurbine
	Processor
	AnnihilationConstraintSphere
	TitaniumGlass
	ParticleBroadband
	LogisticsDrone
	UnipolarMagnet
	Foundation
	CriticalPhoton
	ParticleContainer
	SuperMagneticRing
	GravitonLens
	SpaceWarper
	PlaneFilter
	QuantumChip
	LogisticsVessel
	Log
	ElectromagneticMatrix
	EnergyMatrix
	StructureMatrix
	InformationMatrix
	GravityMatrix
	UniverseMatrix
	SolarSail
	FrameMaterial
	DysonSphereComponent
	SmallCarrierRocket
	PlantFuel
	TeslaTower
	WirelessPowerTower
	SatelliteSubstation
	WindTurbine
	ThermalPowerStation
	SolarPanel
	MiniFusionPowerStation
	Accumulator
	FullAccumulator
	EnergyExchanger
	RayReceiver
	ArtificialStar
	ConveyorMK1
	ConveyorMK2
	ConveyorMK3
	Splitter
	StorageMK1
	StorageMK2
	PlanetaryLogisticsStation
	InterstellarLogisticsStation
	OrbitCollector
	EMRailEjector
	SorterMK1
	SorterMK2
	SorterMK3
	MiningMachine
	OilExtractor
	OilRefinery
	MiniatureParticleCollider
	MatrixLab
	VerticalLaunchingSilo
	AssemblingMachineMK1
	AssemblingMachineMK2
	AssemblingMachineMK3
	Smelter
	ChemicalPlant
	Fractionator
	WaterPump
	StorageTank

	numItems
)

var names = [numItems]string{
	IronOre:                      "IronOre",
	CopperOre:                    "CopperOre",
	StoneOre:                     "StoneOre",
	CoalOre:                      "CoalOre",
	SiliconOre:                   "SiliconOre",
	TitaniumOre:                  "TitaniumOre",
	Water:                        "Water",
	CrudeOil:                     "CrudeOil",
	Hydrogen:                     "Hydrogen",
	Deuterium:                    "Deuterium",
	Antimatter:                   "Antimatter",
	Kimberlite:                   "Kimberlite",
	IronIngot:                    "IronIngot",
	CopperIngot:                  "CopperIngot",
	StoneBrick:                   "StoneBrick",
	EnergeticGraphite:            "EnergeticGraphite",
	HighPuritySilicon:            "HighPuritySilicon",
	TitaniumIngot:                "TitaniumIngot",
	SulfuricAcid:                 "SulfuricAcid",
	RefinedOil:                   "RefinedOil",
	HydrogenFuelRod:              "HydrogenFuelRod",
	DeuteronFuelRod:              "DeuteronFuelRod",
	AntimatterFuelRod:            "AntimatterFuelRod",
	FractalSilicon:               "FractalSilicon",
	Magnet:                       "Magnet",
	Electromagnet:                "Electromagnet",
	Glass:                        "Glass",
	Diamond:                      "Diamond",
	CrystalSilicon:               "CrystalSilicon",
	TitaniumAlloy:                "TitaniumAlloy",
	FireIce:                      "FireIce",
	Plastic:                      "Plastic",
	OrganicCrystal:               "OrganicCrystal",
	Graphene:                     "Graphene",
	Thruster:                     "Thruster",
	OpticalGratingCrystal:        "OpticalGratingCrystal",
	Steel:                        "Steel",
	CircuitBoard:                 "CircuitBoard",
	Prism:                        "Prism",
	Motor:                        "Motor",
	MicrocrystallineComponent:    "MicrocrystallineComponent",
	CasimirCrystal:               "CasimirCrystal",
	StrangeMatter:                "StrangeMatter",
	TitaniumCrystal:              "TitaniumCrystal",
	CarbonNanotube:               "CarbonNanotube",
	ReinforcedThruster:           "ReinforcedThruster",
	SpiniformStalagmiteCrystal:   "SpiniformStalagmiteCrystal",
	Gear:                         "Gear",
	PlasmaExciter:                "PlasmaExciter",
	PhotonCombiner:               "PhotonCombiner",
	ElectromagneticTurbine:       "ElectromagneticTurbine",
	Processor:                    "Processor",
	AnnihilationConstraintSphere: "AnnihilationConstraintSphere",
	TitaniumGlass:                "TitaniumGlass",
	ParticleBroadband:            "ParticleBroadband",
	LogisticsDrone:               "LogisticsDrone",
	UnipolarMagnet:               "UnipolarMagnet",
	Foundation:                   "Foundation",
	CriticalPhoton:               "CriticalPhoton",
	ParticleContainer:            "ParticleContainer",
	SuperMagneticRing:            "SuperMagneticRing",
	GravitonLens:                 "GravitonLens",
	SpaceWarper:                  "SpaceWarper",
	PlaneFilter:                  "PlaneFilter",
	QuantumChip:                  "QuantumChip",
	LogisticsVessel:              "LogisticsVessel",
	Log:                          "Log",
	ElectromagneticMatrix:        "ElectromagneticMatrix",
	EnergyMatrix:                 "EnergyMatrix",
	StructureMatrix:              "StructureMatrix",
	InformationMatrix:            "InformationMatrix",
	GravityMatrix:                "GravityMatrix",
	UniverseMatrix:               "UniverseMatrix",
	SolarSail:                    "SolarSail",
	FrameMaterial:                "FrameMaterial",
	DysonSphereComponent:         "DysonSphereComponent",
	SmallCarrierRocket:           "SmallCarrierRocket",
	PlantFuel:                    "PlantFuel",
	TeslaTower:                   "TeslaTower",
	WirelessPowerTower:           "WirelessPowerTower",
	SatelliteSubstation:          "SatelliteSubstation",
	WindTurbine:                  "WindTurbine",
	ThermalPowerStation:          "ThermalPowerStation",
	SolarPanel:                   "SolarPanel",
	MiniFusionPowerStation:       "MiniFusionPowerStation",
	Accumulator:                  "Accumulator",
	FullAccumulator:              "FullAccumulator",
	EnergyExchanger:              "EnergyExchanger",
	RayReceiver:                  "RayReceiver",
	ArtificialStar:               "ArtificialStar",
	ConveyorMK1:                  "ConveyorMK1",
	ConveyorMK2:                  "ConveyorMK2",
	ConveyorMK3:                  "ConveyorMK3",
	Splitter:                     "Splitter",
	StorageMK1:                   "StorageMK1",
	StorageMK2:                   "StorageMK2",
	PlanetaryLogisticsStation:    "PlanetaryLogisticsStation",
	InterstellarLogisticsStation: "InterstellarLogisticsStation",
	OrbitCollector:               "OrbitCollector",
	EMRailEjector:                "EMRailEjector",
	SorterMK1:                    "SorterMK1",
	SorterMK2:                    "SorterMK2",
	SorterMK3:                    "SorterMK3",
	MiningMachine:                "MiningMachine",
	OilExtractor:                 "OilExtractor",
	OilRefinery:                  "OilRefinery",
	MiniatureParticleCollider:    "MiniatureParticleCollider",
	MatrixLab:                    "MatrixLab",
	VerticalLaunchingSilo:        "VerticalLaunchingSilo",
	AssemblingMachineMK1:         "AssemblingMachineMK1",
	AssemblingMachineMK2:         "AssemblingMachineMK2",
	AssemblingMachineMK3:         "AssemblingMachineMK3",
	Smelter:                      "Smelter",
	ChemicalPlant:                "ChemicalPlant",
	Fractionator:                 "Fractionator",
	WaterPump:                    "WaterPump",
	StorageTank:                  "StorageTank",
}
