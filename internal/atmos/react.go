package atmos

// IsSignificant reports whether gas is present in tile in a large
// enough amount, both absolutely and relative to the mixture, to drive
// a reaction. AGENT_B is exempt from the relative check: even a trace
// amount is potent enough to matter.
func IsSignificant(tile *Tile, gas int, tuning *Tuning) bool {
	if tile.Gases.Values[gas] < tuning.ReactionSignificanceMoles {
		return false
	}
	if gas != GasAgentB && tile.Gases.Values[gas]/tile.Gases.Moles() < tuning.ReactionSignificanceRatio {
		return false
	}
	return true
}

// React runs the fixed-order reaction chain (Agent B conversion,
// nitrous breakdown, plasma fire) over a fraction of tile: the hotspot
// region when hotspotStep is true, the remaining bulk otherwise. It
// returns the total fuel burnt across all three reactions.
func React(tile *Tile, hotspotStep bool, tuning *Tuning) float32 {
	var fraction, heatCapacity, temperature, energy float32

	if hotspotStep {
		if tile.HotspotVolume <= 0 || tile.HotspotTemperature <= tile.Temperature(tuning) {
			tile.HotspotTemperature = 0
			tile.HotspotVolume = 0
			return 0
		}
		fraction = tile.HotspotVolume
		heatCapacity = fraction * tile.HeatCapacity(tuning)
		temperature = tile.HotspotTemperature
		energy = temperature * heatCapacity
	} else {
		fraction = 1 - tile.HotspotVolume
		heatCapacity = fraction * tile.HeatCapacity(tuning)
		energy = tile.ThermalEnergy
		temperature = energy / heatCapacity
	}
	initialEnergy := energy

	var fuelBurnt float32

	if temperature > tuning.AgentBConversionTemp &&
		IsSignificant(tile, GasAgentB, tuning) &&
		IsSignificant(tile, GasCarbonDioxide, tuning) &&
		IsSignificant(tile, GasToxins, tuning) {

		co2Converted := fraction * min32(tile.Gases.CarbonDioxide()*0.75,
			min32(tile.Gases.Toxins()*0.25, tile.Gases.AgentB()*0.05))

		tile.Gases.Values[GasCarbonDioxide] -= co2Converted
		tile.Gases.Values[GasOxygen] += co2Converted
		tile.Gases.Values[GasAgentB] -= co2Converted * 0.05

		heatCapacity = fraction * tile.HeatCapacity(tuning)
		energy = temperature*heatCapacity + tuning.AgentBConversionEnergy*co2Converted
		temperature = energy / heatCapacity

		fuelBurnt += co2Converted
	}

	if temperature > tuning.SleepingGasBreakdownTemp && IsSignificant(tile, GasSleepingAgent, tuning) {
		reactionPercent := clamp32(0.00002*(temperature-0.00001*temperature*temperature), 0, 1)
		decomposed := reactionPercent * fraction * tile.Gases.SleepingAgent()

		tile.Gases.Values[GasSleepingAgent] -= decomposed
		tile.Gases.Values[GasNitrogen] += decomposed
		tile.Gases.Values[GasOxygen] += decomposed / 2

		heatCapacity = fraction * tile.HeatCapacity(tuning)
		energy = temperature*heatCapacity + tuning.NitrousBreakdownEnergy*decomposed
		temperature = energy / heatCapacity

		fuelBurnt += decomposed
	}

	if temperature > tuning.PlasmaBurnMinTemp &&
		IsSignificant(tile, GasToxins, tuning) &&
		IsSignificant(tile, GasOxygen, tuning) {

		efficiency := clamp32((temperature-tuning.PlasmaBurnMinTemp)/(tuning.PlasmaBurnOptimalTemp-tuning.PlasmaBurnMinTemp), 0, 1)
		oxygenPerPlasma := tuning.PlasmaBurnWorstOxygenPerPlasma +
			(tuning.PlasmaBurnBestOxygenPerPlasma-tuning.PlasmaBurnWorstOxygenPerPlasma)*efficiency

		burnable := fraction * min32(tile.Gases.Toxins(), tile.Gases.Oxygen()/tuning.PlasmaBurnRequiredOxygenAvailability)
		burnt := efficiency * tuning.PlasmaBurnMaxRatio * burnable

		tile.Gases.Values[GasToxins] -= burnt
		tile.Gases.Values[GasCarbonDioxide] += burnt
		tile.Gases.Values[GasOxygen] -= burnt * oxygenPerPlasma

		heatCapacity = fraction * tile.HeatCapacity(tuning)
		energy = temperature*heatCapacity + tuning.PlasmaBurnEnergy*burnt
		// Last reaction in the chain; no need to refresh temperature.

		fuelBurnt += burnt
	}

	if fuelBurnt > 0 {
		tile.Gases.SetDirty()
	}

	if hotspotStep {
		if fuelBurnt == 0 {
			tile.ThermalEnergy += energy - (tile.HotspotTemperature-tile.Temperature(tuning))*heatCapacity
			tile.HotspotTemperature = 0
			tile.HotspotVolume = 0
			return 0
		}
		AdjustHotspot(tile, energy-tile.HotspotTemperature*heatCapacity, tuning)
	} else {
		tile.ThermalEnergy += energy - initialEnergy
	}

	return fuelBurnt
}

// AdjustHotspot applies a thermal energy delta to tile's sub-tile fire
// region. Positive deltas first heat the hotspot to
// PLASMA_BURN_OPTIMAL_TEMP, then expand its volume up to 1 (filling the
// tile and dissolving into bulk thermal energy); negative deltas only
// shrink the volume.
func AdjustHotspot(tile *Tile, delta float32, tuning *Tuning) {
	heatCapacity := tile.HeatCapacity(tuning)

	if delta < 0 {
		totalNeeded := heatCapacity * tile.HotspotTemperature
		available := heatCapacity*tile.HotspotTemperature*tile.HotspotVolume + delta
		tile.HotspotVolume = available / totalNeeded
		return
	}

	temperatureDelta := tuning.PlasmaBurnOptimalTemp - min32(tile.HotspotTemperature, tuning.PlasmaBurnOptimalTemp)
	heatingNeeded := heatCapacity * temperatureDelta

	if heatingNeeded <= delta {
		tile.HotspotTemperature = tuning.PlasmaBurnOptimalTemp
		remaining := delta - heatingNeeded

		totalNeeded := heatCapacity * tuning.PlasmaBurnOptimalTemp
		tileTemperature := tile.ThermalEnergy / heatCapacity
		hotspotEnergy := heatCapacity * tile.HotspotVolume * (tile.HotspotTemperature - tileTemperature)
		available := tile.ThermalEnergy + hotspotEnergy + remaining

		if totalNeeded <= available {
			remaining = available - totalNeeded
			tile.ThermalEnergy = heatCapacity*tuning.PlasmaBurnOptimalTemp + remaining
			tile.HotspotTemperature = 0
			tile.HotspotVolume = 0
		} else {
			tile.HotspotVolume = available / totalNeeded
		}
		return
	}

	tile.HotspotTemperature += delta / (tile.HotspotVolume * heatCapacity)
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
