package tech

// Technology is a node of the research tree.
type Technology int

// Technologies in declaration order. DysonSphereProgram is the root of the
// tree and the zero value.
const (
	DysonSphereProgram Technology = iota
	Electromagnetism
	BasicLogisticsSystem
	AutomaticMetallurgy
	ElectromagneticMatrix
	BasicAssemblingProcesses
	FluidStorageEncapsulation
	HighEfficiencyPlasmaControl
	ElectromagneticDrive
	ImprovedLogisticsSystem
	SteelSmelting
	SmeltingPurification
	ThermalPower
	PlasmaExtractRefining
	AccelerantMK1
	EnvironmentModification
	CrystalSmelting
	SolarCollection
	SemiconductorMaterial
	DeuteriumFractionation
	BasicChemicalEngineering
	EnergyMatrix
	MagneticLevitationTechnology
	HighEfficiencyLogisticsSystem
	TitaniumSmelting
	EnergyStorage
	PhotonFrequencyConversion
	Processor
	AppliedSuperconductor
	PolymerChemicalEngineering
	XRayCracking
	HydrogenFuelRod
	SuperMagneticFieldGenerator
	PlanetaryLogisticsSystem
	SolarSailOrbitSystem
	HighSpeedAssemblingProcesses
	HighStrengthCrystal
	Thruster
	AccelerantMK2
	MagneticParticleTrap
	HighStrengthTitaniumAlloy
	HighStrengthLightweightStructure
	RayReceiver
	MiniFusionPowerGeneration
	HighStrengthMaterial
	StructureMatrix
	ReinforcedThruster
	InterstellarLogisticsSystem
	InterstellarPowerTransmission
	ParticleControlTechnology
	HighStrengthGlass
	CasimirCrystal
	MiniatureParticleCollider
	AccelerantMK3
	SatellitePowerDistributionSystem
	GasGiantsExplotiation
	InformationMatrix
	WaveFunctionInterference
	StrangeMatter
	VerticalLaunchingSilo
	QuantumChip
	GravitationalWaveRefraction
	DysonSphereStressSystem
	PlanetaryIonosphereUtilization
	QuantumPrintingTechnology
	GravityMatrix
	DiracInversionMechanism
	ControlledAnnihilationReaction
	ArtificialStar
	UniverseMatrix
	MissionCompleted

	numTechnologies
)

var names = [numTechnologies]string{
	DysonSphereProgram:               "DysonSphereProgram",
	Electromagnetism:                 "Electromagnetism",
	BasicLogisticsSystem:             "BasicLogisticsSystem",
	AutomaticMetallurgy:              "AutomaticMetallurgy",
	ElectromagneticMatrix:            "ElectromagneticMatrix",
	BasicAssemblingProcesses:         "BasicAssemblingProcesses",
	FluidStorageEncapsulation:        "FluidStorageEncapsulation",
	HighEfficiencyPlasmaControl:      "HighEfficiencyPlasmaControl",
	ElectromagneticDrive:             "ElectromagneticDrive",
	ImprovedLogisticsSystem:          "ImprovedLogisticsSystem",
	SteelSmelting:                    "SteelSmelting",
	SmeltingPurification:             "SmeltingPurification",
	ThermalPower:                     "ThermalPower",
	PlasmaExtractRefining:            "PlasmaExtractRefining",
	AccelerantMK1:                    "AccelerantMK1",
	EnvironmentModification:          "EnvironmentModification",
	CrystalSmelting:                  "CrystalSmelting",
	SolarCollection:                  "SolarCollection",
	SemiconductorMaterial:            "SemiconductorMaterial",
	DeuteriumFractionation:           "DeuteriumFractionation",
	BasicChemicalEngineering:         "BasicChemicalEngineering",
	EnergyMatrix:                     "EnergyMatrix",
	MagneticLevitationTechnology:     "MagneticLevitationTechnology",
	HighEfficiencyLogisticsSystem:    "HighEfficiencyLogisticsSystem",
	TitaniumSmelting:                 "TitaniumSmelting",
	EnergyStorage:                    "EnergyStorage",
	PhotonFrequencyConversion:        "PhotonFrequencyConversion",
	Processor:                        "Processor",
	AppliedSuperconductor:            "AppliedSuperconductor",
	PolymerChemicalEngineering:       "PolymerChemicalEngineering",
	XRayCracking:                     "XRayCracking",
	HydrogenFuelRod:                  "HydrogenFuelRod",
	SuperMagneticFieldGenerator:      "SuperMagneticFieldGenerator",
	PlanetaryLogisticsSystem:         "PlanetaryLogisticsSystem",
	SolarSailOrbitSystem:             "SolarSailOrbitSystem",
	HighSpeedAssemblingProcesses:     "HighSpeedAssemblingProcesses",
	HighStrengthCrystal:              "HighStrengthCrystal",
	Thruster:                         "Thruster",
	AccelerantMK2:                    "AccelerantMK2",
	MagneticParticleTrap:             "MagneticParticleTrap",
	HighStrengthTitaniumAlloy:        "HighStrengthTitaniumAlloy",
	HighStrengthLightweightStructure: "HighStrengthLightweightStructure",
	RayReceiver:                      "RayReceiver",
	MiniFusionPowerGeneration:        "MiniFusionPowerGeneration",
	HighStrengthMaterial:             "HighStrengthMaterial",
	StructureMatrix:                  "StructureMatrix",
	ReinforcedThruster:               "ReinforcedThruster",
	InterstellarLogisticsSystem:      "InterstellarLogisticsSystem",
	InterstellarPowerTransmission:    "InterstellarPowerTransmission",
	ParticleControlTechnology:        "ParticleControlTechnology",
	HighStrengthGlass:                "HighStrengthGlass",
	CasimirCrystal:                   "CasimirCrystal",
	MiniatureParticleCollider:        "MiniatureParticleCollider",
	AccelerantMK3:                    "AccelerantMK3",
	SatellitePowerDistributionSystem: "SatellitePowerDistributionSystem",
	GasGiantsExplotiation:            "GasGiantsExplotiation",
	InformationMatrix:                "InformationMatrix",
	WaveFunctionInterference:         "WaveFunctionInterference",
	StrangeMatter:                    "StrangeMatter",
	VerticalLaunchingSilo:            "VerticalLaunchingSilo",
	QuantumChip:                      "QuantumChip",
	GravitationalWaveRefraction:      "GravitationalWaveRefraction",
	DysonSphereStressSystem:          "DysonSphereStressSystem",
	PlanetaryIonosphereUtilization:   "PlanetaryIonosphereUtilization",
	QuantumPrintingTechnology:        "QuantumPrintingTechnology",
	GravityMatrix:                    "GravityMatrix",
	DiracInversionMechanism:          "DiracInversionMechanism",
	ControlledAnnihilationReaction:   "ControlledAnnihilationReaction",
	ArtificialStar:                   "ArtificialStar",
	UniverseMatrix:                   "UniverseMatrix",
	MissionCompleted:                 "MissionCompleted",
}
