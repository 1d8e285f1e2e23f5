package atmos

// Tuning holds every constant the host is allowed to override. It is
// passed explicitly into every function that needs it rather than
// living as package-level globals, so a process can run Z-levels with
// different tuning side by side.
type Tuning struct {
	MapSize  int
	GasCount int

	// SpecificHeats is indexed by gas identity (GasOxygen, GasNitrogen,
	// ...) and must have at least GasCount entries.
	SpecificHeats []float32

	MinimumNonzeroMoles float32
	MomentumDecay        float32
	MomentumMultiplier   float32
	WindMultiplier       float32

	TCMB                        float32
	T20C                        float32
	SpaceCoolingCapacity        float32
	OpenHeatTransferCoefficient float32

	AgentBConversionTemp   float32
	AgentBConversionEnergy float32

	SleepingGasBreakdownTemp float32
	NitrousBreakdownEnergy   float32

	PlasmaBurnMinTemp                    float32
	PlasmaBurnOptimalTemp                float32
	PlasmaBurnEnergy                     float32
	PlasmaBurnWorstOxygenPerPlasma       float32
	PlasmaBurnBestOxygenPerPlasma        float32
	PlasmaBurnRequiredOxygenAvailability float32
	PlasmaBurnMaxRatio                   float32

	ReactionSignificanceMoles float32
	ReactionSignificanceRatio float32

	ToxinsMinFireAndVisibilityMoles float32
	SleepingGasVisibilityMoles      float32
	OxygenMinFireMoles              float32
}

// Gas identities. Any Tuning.GasCount >= GasCountMinimum must keep these
// six in these positions; additional host-defined gases may follow.
const (
	GasOxygen = iota
	GasNitrogen
	GasCarbonDioxide
	GasToxins
	GasSleepingAgent
	GasAgentB

	GasCountMinimum
)

// Axis identities, shared between Tile.Momentum and Tile.Wall indices.
const (
	AxisX = 0
	AxisY = 1
)

// AxesStep holds the (dx, dy) step for each axis's positive direction,
// in the same order as AxisX, AxisY.
var AxesStep = [2][2]int32{
	{1, 0}, // AxisX: East
	{0, 1}, // AxisY: North
}

// DefaultTuning returns the canonical station-atmospherics tuning used
// by the scenario registry and as the base for config.Load.
func DefaultTuning() *Tuning {
	specificHeats := make([]float32, GasCountMinimum)
	specificHeats[GasOxygen] = 20.0
	specificHeats[GasNitrogen] = 20.0
	specificHeats[GasCarbonDioxide] = 30.0
	specificHeats[GasToxins] = 200.0
	specificHeats[GasSleepingAgent] = 40.0
	specificHeats[GasAgentB] = 5.0

	return &Tuning{
		MapSize:       255,
		GasCount:      GasCountMinimum,
		SpecificHeats: specificHeats,

		MinimumNonzeroMoles: 0.01,
		MomentumDecay:        0.9,
		MomentumMultiplier:   1.0,
		WindMultiplier:       20.0,

		TCMB:                        2.7,
		T20C:                        293.15,
		SpaceCoolingCapacity:        700.0,
		OpenHeatTransferCoefficient: 4.0,

		AgentBConversionTemp:   1000.0,
		AgentBConversionEnergy: 1e6,

		SleepingGasBreakdownTemp: 433.15,
		NitrousBreakdownEnergy:   200000.0,

		PlasmaBurnMinTemp:                    373.15,
		PlasmaBurnOptimalTemp:                1000.0,
		PlasmaBurnEnergy:                     3e6,
		PlasmaBurnWorstOxygenPerPlasma:        1.4,
		PlasmaBurnBestOxygenPerPlasma:         0.4,
		PlasmaBurnRequiredOxygenAvailability: 1.4,
		PlasmaBurnMaxRatio:                   0.9,

		ReactionSignificanceMoles: 0.1,
		ReactionSignificanceRatio: 0.01,

		ToxinsMinFireAndVisibilityMoles: 0.5,
		SleepingGasVisibilityMoles:      1.0,
		OxygenMinFireMoles:              0.5,
	}
}
