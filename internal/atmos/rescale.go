package atmos

// RescaleMomentum adjusts tile index's momentum on each positive axis to
// account for the mass AtmosMode just added or removed: momentum scales
// by the ratio of post-mode to pre-mode combined pressure with each
// neighbor, or zeroes out if there was no pressure to scale from.
func RescaleMomentum(prev, next *ZLevel, index int, tuning *Tuning) {
	x, y := next.Coords(index)
	myOldPressure := prev.GetTile(index).Pressure(tuning)
	myNewPressure := next.GetTile(index).Pressure(tuning)

	for axis, step := range AxesStep {
		neighborIndex, ok := next.MaybeIndex(x+step[0], y+step[1])
		if !ok {
			continue
		}

		theirOldPressure := prev.GetTile(neighborIndex).Pressure(tuning)
		if myOldPressure+theirOldPressure == 0 {
			next.GetTile(index).Momentum[axis] = 0
			continue
		}

		theirNewPressure := next.GetTile(neighborIndex).Pressure(tuning)
		scale := (myNewPressure + theirNewPressure) / (myOldPressure + theirOldPressure)
		next.GetTile(index).Momentum[axis] *= scale
	}
}
