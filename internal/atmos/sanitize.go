package atmos

import "math"

// Sanitize repairs numeric anomalies produced by reactions and
// conduction: non-finite values roll back to prev's value for that
// field, negative values clamp to zero. A mixture too dilute to matter
// is zeroed outright (not counted as a sanitation event, since it's
// expected). Returns whether anything was actually repaired, for
// observability.
func Sanitize(next, prev *Tile, tuning *Tuning) bool {
	sanitized := false

	for i := range next.Gases.Values {
		v := next.Gases.Values[i]
		switch {
		case !isFinite32(v):
			next.Gases.Values[i] = prev.Gases.Values[i]
			next.Gases.SetDirty()
			sanitized = true
		case v < 0:
			next.Gases.Values[i] = 0
			next.Gases.SetDirty()
			sanitized = true
		}
	}

	switch {
	case !isFinite32(next.ThermalEnergy):
		next.ThermalEnergy = prev.ThermalEnergy
		sanitized = true
	case next.ThermalEnergy < 0:
		next.ThermalEnergy = 0
		sanitized = true
	}

	if !isFinite32(next.Momentum[AxisX]) {
		next.Momentum[AxisX] = prev.Momentum[AxisX]
		sanitized = true
	}
	if !isFinite32(next.Momentum[AxisY]) {
		next.Momentum[AxisY] = prev.Momentum[AxisY]
		sanitized = true
	}

	if next.Gases.Moles() < tuning.MinimumNonzeroMoles {
		for i := range next.Gases.Values {
			next.Gases.Values[i] = 0
		}
		next.ThermalEnergy = 0
	}

	return sanitized
}

func isFinite32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
