package atmos

// ApplyTileMode applies a tile's AtmosMode for this tick: Space tiles
// lose all gas and heat, ExposedTo tiles reset to their environment
// prototype, and Sealed tiles radiate toward the cosmic background once
// hot enough to matter.
func ApplyTileMode(tile *Tile, environments []Tile, tuning *Tuning) error {
	switch tile.Mode.Kind {
	case ModeSpace:
		for i := range tile.Gases.Values {
			tile.Gases.Values[i] = 0
		}
		tile.Gases.SetDirty()
		tile.ThermalEnergy = 0

	case ModeExposedTo:
		id := tile.Mode.EnvironmentID
		if id < 0 || int(id) >= len(environments) {
			return ErrInvalidEnvironment
		}
		prototype := environments[id]
		tile.Gases.CopyFrom(prototype.Gases)
		tile.Gases.SetDirty()
		tile.ThermalEnergy = prototype.ThermalEnergy

	case ModeSealed:
		if tile.Temperature(tuning) > tuning.PlasmaBurnMinTemp {
			tile.ThermalEnergy -= tuning.SpaceCoolingCapacity
			if tile.Temperature(tuning) < tuning.TCMB {
				tile.ThermalEnergy = tuning.TCMB * tile.HeatCapacity(tuning)
			}
		}
	}
	return nil
}
