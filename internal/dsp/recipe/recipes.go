package recipe

// Recipe names one way of turning ingredient stacks into result stacks.
type Recipe int

// Recipes in declaration order. Where several recipes yield the same item
// they are listed in this order in the production index.
const (
	IronSmelting Recipe = iota
	CopperSmelting
	StoneSmelting
	SiliconSmelting
	GraphiteSmelting
	PlasmaRefining
	Plastic
	GrapheneFromFireIce
	GrapheneFromGraphiteAndSulfuric
	MagnetSmelting
	Electromagnet
	CrystalSiliconFromIngot
	CrystalSiliconFromFractal
	GlassSmelting
	DiamondFromGraphite
	DiamondFromKimberlite
	XRayCracking
	OrganicCrystalFromWood
	OrganicCrystalFromPlastic
	HydrogenFuelRod
	SteelSmelting
	TitaniumSmelting
	SiliconOreFromStone
	TitaniumAlloy
	TitaniumGlass
	SulfuricAcid
	CarbonNanotube
	CarbonNanotubeFromStalagmite
	DeuteriumFractionation
	DeuteriumFromCollider
	Antimatter
	StrangeMatter
	CriticalPhoton
	Gear
	CircuitBoard
	Prism
	Motor
	PlasmaExciter
	ElectromagneticTurbine
	SuperMagneticRing
	PhotonCombiner
	PhotonCombinerFromGrating
	MicrocrystallineComponent
	Processor
	Thruster
	ReinforcedThruster
	TitaniumCrystal
	CasimirCrystal
	CasimirCrystalFromGrating
	ParticleBroadband
	ParticleContainer
	ParticleContainerFromUnipolar
	GravitonLens
	PlaneFilter
	QuantumChip
	AnnihilationConstraintSphere
	SpaceWarper
	SpaceWarperFromMatrix
	Foundation
	LogisticsDrone
	LogisticsVessel
	DeuteronFuelRod
	AntimatterFuelRod
	FrameMaterial
	DysonSphereComponent
	SmallCarrierRocket
	SolarSail
	ElectromagneticMatrix
	EnergyMatrix
	StructureMatrix
	InformationMatrix
	GravityMatrix
	UniverseMatrix
	TeslaTower
	WirelessPowerTower
	SatelliteSubstation
	WindTurbine
	ThermalPowerStation
	SolarPanel
	MiniFusionPowerStation
	Accumulator
	EnergyExchanger
	RayReceiver
	ArtificialStar
	ConveyorMK1
	ConveyorMK2
	ConveyorMK3
	Splitter
	StorageMK1
	StorageMK2
	StorageTank
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
	IronOreVein
	CopperOreVein
	StoneOreVein
	CoalOreVein
	SiliconOreVein
	TitaniumOreVein
	KimberliteVein
	FireIceVein
	FractalSiliconVein
	OpticalGratingCrystalVein
	SpiniformStalagmiteCrystalVein
	UnipolarMagnetVein
	WaterPumping
	CrudeOilExtraction
	GasGiantCollection

	numRecipes
)

var names = [numRecipes]string{
	IronSmelting:                    "IronSmelting",
	CopperSmelting:                  "CopperSmelting",
	StoneSmelting:                   "StoneSmelting",
	SiliconSmelting:                 "SiliconSmelting",
	GraphiteSmelting:                "GraphiteSmelting",
	PlasmaRefining:                  "PlasmaRefining",
	Plastic:                         "Plastic",
	GrapheneFromFireIce:             "GrapheneFromFireIce",
	GrapheneFromGraphiteAndSulfuric: "GrapheneFromGraphiteAndSulfuric",
	MagnetSmelting:                  "MagnetSmelting",
	Electromagnet:                   "Electromagnet",
	CrystalSiliconFromIngot:         "CrystalSiliconFromIngot",
	CrystalSiliconFromFractal:       "CrystalSiliconFromFractal",
	GlassSmelting:                   "GlassSmelting",
	DiamondFromGraphite:             "DiamondFromGraphite",
	DiamondFromKimberlite:           "DiamondFromKimberlite",
	XRayCracking:                    "XRayCracking",
	OrganicCrystalFromWood:          "OrganicCrystalFromWood",
	OrganicCrystalFromPlastic:       "OrganicCrystalFromPlastic",
	HydrogenFuelRod:                 "HydrogenFuelRod",
	SteelSmelting:                   "SteelSmelting",
	TitaniumSmelting:                "TitaniumSmelting",
	SiliconOreFromStone:             "SiliconOreFromStone",
	TitaniumAlloy:                   "TitaniumAlloy",
	TitaniumGlass:                   "TitaniumGlass",
	SulfuricAcid:                    "SulfuricAcid",
	CarbonNanotube:                  "CarbonNanotube",
	CarbonNanotubeFromStalagmite:    "CarbonNanotubeFromStalagmite",
	DeuteriumFractionation:          "DeuteriumFractionation",
	DeuteriumFromCollider:           "DeuteriumFromCollider",
	Antimatter:                      "Antimatter",
	StrangeMatter:                   "StrangeMatter",
	CriticalPhoton:                  "CriticalPhoton",
	Gear:                            "Gear",
	CircuitBoard:                    "CircuitBoard",
	Prism:                           "Prism",
	Motor:                           "Motor",
	PlasmaExciter:                   "PlasmaExciter",
	ElectromagneticTurbine:          "ElectromagneticTurbine",
	SuperMagneticRing:               "SuperMagneticRing",
	PhotonCombiner:                  "PhotonCombiner",
	PhotonCombinerFromGrating:       "PhotonCombinerFromGrating",
	MicrocrystallineComponent:       "MicrocrystallineComponent",
	Processor:                       "Processor",
	Thruster:                        "Thruster",
	ReinforcedThruster:              "ReinforcedThruster",
	TitaniumCrystal:                 "TitaniumCrystal",
	CasimirCrystal:                  "CasimirCrystal",
	CasimirCrystalFromGrating:       "CasimirCrystalFromGrating",
	ParticleBroadband:               "ParticleBroadband",
	ParticleContainer:               "ParticleContainer",
	ParticleContainerFromUnipolar:   "ParticleContainerFromUnipolar",
	GravitonLens:                    "GravitonLens",
	PlaneFilter:                     "PlaneFilter",
	QuantumChip:                     "QuantumChip",
	AnnihilationConstraintSphere:    "AnnihilationConstraintSphere",
	SpaceWarper:                     "SpaceWarper",
	SpaceWarperFromMatrix:           "SpaceWarperFromMatrix",
	Foundation:                      "Foundation",
	LogisticsDrone:                  "LogisticsDrone",
	LogisticsVessel:                 "LogisticsVessel",
	DeuteronFuelRod:                 "DeuteronFuelRod",
	AntimatterFuelRod:               "AntimatterFuelRod",
	FrameMaterial:                   "FrameMaterial",
	DysonSphereComponent:            "DysonSphereComponent",
	SmallCarrierRocket:              "SmallCarrierRocket",
	SolarSail:                       "SolarSail",
	ElectromagneticMatrix:           "ElectromagneticMatrix",
	EnergyMatrix:                    "EnergyMatrix",
	StructureMatrix:                 "StructureMatrix",
	InformationMatrix:               "InformationMatrix",
	GravityMatrix:                   "GravityMatrix",
	UniverseMatrix:                  "UniverseMatrix",
	TeslaTower:                      "TeslaTower",
	WirelessPowerTower:              "WirelessPowerTower",
	SatelliteSubstation:             "SatelliteSubstation",
	WindTurbine:                     "WindTurbine",
	ThermalPowerStation:             "ThermalPowerStation",
	SolarPanel:                      "SolarPanel",
	MiniFusionPowerStation:          "MiniFusionPowerStation",
	Accumulator:                     "Accumulator",
	EnergyExchanger:                 "EnergyExchanger",
	RayReceiver:                     "RayReceiver",
	ArtificialStar:                  "ArtificialStar",
	ConveyorMK1:                     "ConveyorMK1",
	ConveyorMK2:                     "ConveyorMK2",
	ConveyorMK3:                     "ConveyorMK3",
	Splitter:                        "Splitter",
	StorageMK1:                      "StorageMK1",
	StorageMK2:                      "StorageMK2",
	StorageTank:                     "StorageTank",
	PlanetaryLogisticsStation:       "PlanetaryLogisticsStation",
	InterstellarLogisticsStation:    "InterstellarLogisticsStation",
	OrbitCollector:                  "OrbitCollector",
	EMRailEjector:                   "EMRailEjector",
	SorterMK1:                       "SorterMK1",
	SorterMK2:                       "SorterMK2",
	SorterMK3:                       "SorterMK3",
	MiningMachine:                   "MiningMachine",
	OilExtractor:                    "OilExtractor",
	OilRefinery:                     "OilRefinery",
	MiniatureParticleCollider:       "MiniatureParticleCollider",
	MatrixLab:                       "MatrixLab",
	VerticalLaunchingSilo:           "VerticalLaunchingSilo",
	AssemblingMachineMK1:            "AssemblingMachineMK1",
	AssemblingMachineMK2:            "AssemblingMachineMK2",
	AssemblingMachineMK3:            "AssemblingMachineMK3",
	Smelter:                         "Smelter",
	ChemicalPlant:                   "ChemicalPlant",
	Fractionator:                    "Fractionator",
	WaterPump:                       "WaterPump",
	IronOreVein:                     "IronOreVein",
	CopperOreVein:                   "CopperOreVein",
	StoneOreVein:                    "StoneOreVein",
	CoalOreVein:                     "CoalOreVein",
	SiliconOreVein:                  "SiliconOreVein",
	TitaniumOreVein:                 "TitaniumOreVein",
	KimberliteVein:                  "KimberliteVein",
	FireIceVein:                     "FireIceVein",
	FractalSiliconVein:              "FractalSiliconVein",
	OpticalGratingCrystalVein:       "OpticalGratingCrystalVein",
	SpiniformStalagmiteCrystalVein:  "SpiniformStalagmiteCrystalVein",
	UnipolarMagnetVein:              "UnipolarMagnetVein",
	WaterPumping:                    "WaterPumping",
	CrudeOilExtraction:              "CrudeOilExtraction",
	GasGiantCollection:              "GasGiantCollection",
}
