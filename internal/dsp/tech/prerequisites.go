package tech

// prerequisites lists, per technology, what has to be researched first.
// Order within a list is significant and preserved in the output.
//
// MiniatureParticleCollider lists itself. That is how the research tree was
// transcribed and it is kept as data; the auditor reports it.
var prerequisites = [numTechnologies][]Technology{
	DysonSphereProgram: nil,

	Electromagnetism:            {DysonSphereProgram},
	BasicLogisticsSystem:        {Electromagnetism},
	AutomaticMetallurgy:         {Electromagnetism},
	ElectromagneticMatrix:       {Electromagnetism},
	BasicAssemblingProcesses:    {Electromagnetism},
	FluidStorageEncapsulation:   {Electromagnetism},
	HighEfficiencyPlasmaControl: {Electromagnetism},
	ElectromagneticDrive:        {Electromagnetism},

	ImprovedLogisticsSystem:      {BasicLogisticsSystem},
	SteelSmelting:                {AutomaticMetallurgy},
	SmeltingPurification:         {AutomaticMetallurgy},
	ThermalPower:                 {BasicAssemblingProcesses},
	PlasmaExtractRefining:        {FluidStorageEncapsulation, HighEfficiencyPlasmaControl},
	AccelerantMK1:                {HighEfficiencyPlasmaControl},
	EnvironmentModification:      {SteelSmelting},
	CrystalSmelting:              {SmeltingPurification},
	SolarCollection:              {SmeltingPurification, ElectromagneticMatrix},
	SemiconductorMaterial:        {BasicAssemblingProcesses},
	DeuteriumFractionation:       {ThermalPower},
	BasicChemicalEngineering:     {FluidStorageEncapsulation, PlasmaExtractRefining},
	EnergyMatrix:                 {PlasmaExtractRefining},
	MagneticLevitationTechnology: {ElectromagneticDrive},

	HighEfficiencyLogisticsSystem: {ImprovedLogisticsSystem},
	TitaniumSmelting:              {SteelSmelting},
	EnergyStorage:                 {CrystalSmelting},
	PhotonFrequencyConversion:     {SolarCollection},
	Processor:                     {SemiconductorMaterial},
	AppliedSuperconductor:         {BasicChemicalEngineering},
	PolymerChemicalEngineering:    {BasicChemicalEngineering},
	XRayCracking:                  {BasicChemicalEngineering, PlasmaExtractRefining},
	HydrogenFuelRod:               {EnergyMatrix},
	SuperMagneticFieldGenerator:   {MagneticLevitationTechnology},
	PlanetaryLogisticsSystem:      {HighEfficiencyLogisticsSystem},
	SolarSailOrbitSystem:          {PhotonFrequencyConversion},
	HighSpeedAssemblingProcesses:  {BasicAssemblingProcesses, Processor},
	HighStrengthCrystal:           {PolymerChemicalEngineering},
	Thruster:                      {HydrogenFuelRod},
	AccelerantMK2:                 {AccelerantMK1},
	MagneticParticleTrap:          {MagneticLevitationTechnology},
	HighStrengthTitaniumAlloy:     {TitaniumSmelting},

	HighStrengthLightweightStructure: {SolarSailOrbitSystem},
	RayReceiver:                      {SolarSailOrbitSystem},
	MiniFusionPowerGeneration:        {DeuteriumFractionation},
	HighStrengthMaterial:             {AppliedSuperconductor},
	StructureMatrix:                  {HighStrengthCrystal},
	ReinforcedThruster:               {Thruster},
	InterstellarLogisticsSystem:      {PlanetaryLogisticsSystem, HighStrengthTitaniumAlloy},
	InterstellarPowerTransmission:    {EnergyStorage, HighStrengthTitaniumAlloy},
	ParticleControlTechnology:        {HighStrengthMaterial},
	HighStrengthGlass:                {HighStrengthMaterial},
	CasimirCrystal:                   {StructureMatrix},
	MiniatureParticleCollider:        {MiniatureParticleCollider},
	AccelerantMK3:                    {AccelerantMK2},
	SatellitePowerDistributionSystem: {SuperMagneticFieldGenerator},
	GasGiantsExplotiation:            {InterstellarLogisticsSystem, InterstellarPowerTransmission},
	InformationMatrix:                {Processor, ParticleControlTechnology},
	WaveFunctionInterference:         {HighStrengthGlass, CasimirCrystal},
	StrangeMatter:                    {MiniatureParticleCollider},
	VerticalLaunchingSilo:            {HighStrengthLightweightStructure},
	QuantumChip:                      {InformationMatrix, WaveFunctionInterference},
	GravitationalWaveRefraction:      {StrangeMatter},
	DysonSphereStressSystem:          {VerticalLaunchingSilo},
	PlanetaryIonosphereUtilization:   {RayReceiver},
	QuantumPrintingTechnology:        {QuantumChip, GravitationalWaveRefraction},
	GravityMatrix:                    {QuantumChip, GravitationalWaveRefraction},
	DiracInversionMechanism:          {PlanetaryIonosphereUtilization},
	ControlledAnnihilationReaction:   {DiracInversionMechanism},
	ArtificialStar:                   {ControlledAnnihilationReaction},
	UniverseMatrix:                   {DiracInversionMechanism},
	MissionCompleted:                 {UniverseMatrix},
}
