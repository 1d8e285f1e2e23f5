package scenario

import "github.com/kelvinreef/atmosim/internal/atmos"

func setGas(tile *atmos.Tile, tuning *atmos.Tuning, gas int, moles, temperature float32) {
	tile.Gases.Values[gas] = moles
	tile.ThermalEnergy = moles * tuning.SpecificHeats[gas] * temperature
}

// EmptyChain (S1) builds a Z-level with no gas anywhere: the one-tick
// no-op baseline.
func EmptyChain(tuning *atmos.Tuning) *atmos.ZLevel {
	return atmos.NewZLevel(tuning)
}

// PressureRelease (S2) loads the first tile of row y=0 with a hot
// oxygen charge and leaves the rest of the row as empty Sealed tiles,
// so a tick visibly redistributes pressure down the chain.
func PressureRelease(tuning *atmos.Tuning) *atmos.ZLevel {
	z := atmos.NewZLevel(tuning)
	tile := z.GetTile(z.Index(0, 0))
	setGas(tile, tuning, atmos.GasOxygen, 100, 300)
	return z
}

// SpaceVent (S3) is PressureRelease with the far end of the row opened
// to Space, so the chain loses mass instead of merely redistributing
// it.
func SpaceVent(tuning *atmos.Tuning) *atmos.ZLevel {
	z := PressureRelease(tuning)
	far := z.GetTile(z.Index(int32(tuning.MapSize-1), 0))
	far.Mode = atmos.Space()
	return z
}

// PlasmafireIgnition (S4) seeds a single sealed tile with a toxins/
// oxygen mixture already above the plasma fire activation temperature,
// so the very first tick ignites it.
func PlasmafireIgnition(tuning *atmos.Tuning) *atmos.ZLevel {
	z := atmos.NewZLevel(tuning)
	tile := z.GetTile(0)
	tile.Gases.Values[atmos.GasToxins] = 50
	tile.Gases.Values[atmos.GasOxygen] = 200
	tile.ThermalEnergy = tile.HeatCapacity(tuning) * (tuning.PlasmaBurnMinTemp + 50)
	return z
}

// HotspotFormation (S5) places a hot tile next to a cool one, both
// filled with inert nitrogen and wired for superconduction along their
// shared border, so the first tick's superconduct step seeds a hotspot
// on the cooler tile.
func HotspotFormation(tuning *atmos.Tuning) *atmos.ZLevel {
	z := atmos.NewZLevel(tuning)

	hot := z.GetTile(z.Index(0, 0))
	setGas(hot, tuning, atmos.GasNitrogen, 100, 2000)
	hot.Superconductivity.East = 1

	cool := z.GetTile(z.Index(1, 0))
	setGas(cool, tuning, atmos.GasNitrogen, 100, 300)
	cool.Superconductivity.West = 1

	return z
}
