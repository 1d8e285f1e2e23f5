package atmos

import "testing"

// TestSuperconductIsEnergySymmetric covers invariant 7: away from the
// hotspot branches, superconduct's thermal energy delta on one tile is
// the exact negative of the delta on the other.
func TestSuperconductIsEnergySymmetric(t *testing.T) {
	tuning := DefaultTuning()

	me := NewTile(tuning.GasCount)
	setOxygen(&me, tuning, 10, 350)
	me.Superconductivity.East = 1

	them := NewTile(tuning.GasCount)
	setOxygen(&them, tuning, 10, 280)
	them.Superconductivity.West = 1

	meBefore := me.ThermalEnergy
	themBefore := them.ThermalEnergy

	Superconduct(&me, &them, true, false, tuning)

	meDelta := me.ThermalEnergy - meBefore
	themDelta := them.ThermalEnergy - themBefore

	if diff := meDelta + themDelta; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("expected equal-and-opposite thermal deltas, got me=%v them=%v (sum %v)", meDelta, themDelta, diff)
	}
	if meDelta >= 0 {
		t.Errorf("expected the hotter tile to lose energy, got delta %v", meDelta)
	}
}
