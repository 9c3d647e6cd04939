package producer

// Producer is a kind of building that runs recipes.
type Producer int

// Producers in declaration order.
const (
	AssemblingMachine Producer = iota
	Smelter
	OilRefinery
	ChemicalPlant
	Fractionator
	RayReceiver
	OrbitCollector
	MiningMachine
	OilExtractor
	MiniatureParticleCollider
	MatrixLab
	WaterPump

	numProducers
)

var names = [numProducers]string{
	AssemblingMachine:         "AssemblingMachine",
	Smelter:                   "Smelter",
	OilRefinery:               "OilRefinery",
	ChemicalPlant:             "ChemicalPlant",
	Fractionator:              "Fractionator",
	RayReceiver:               "RayReceiver",
	OrbitCollector:            "OrbitCollector",
	MiningMachine:             "MiningMachine",
	OilExtractor:              "OilExtractor",
	MiniatureParticleCollider: "MiniatureParticleCollider",
	MatrixLab:                 "MatrixLab",
	WaterPump:                 "WaterPump",
}
