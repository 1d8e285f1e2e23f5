package atmos

// TickStats accumulates the per-tick counters a host cares about for
// telemetry: how many tiles needed sanitizing and how much fuel burnt
// across the whole grid. Tick's stats parameter may be nil when the
// caller doesn't need them.
type TickStats struct {
	Sanitized int
	FuelBurnt float32
}

// Tick advances one Z-level forward by one step. next must already be
// the same size as prev; Tick overwrites it with a copy of prev before
// running wall detection, so the caller only needs to hold onto the
// pointer, not pre-populate it. On success the caller swaps next into
// prev's role for the following tick; on error, next's partial
// mutations must be treated as discarded.
func Tick(prev, next *ZLevel, environments []Tile, bag *Bag, z int32, tuning *Tuning, stats *TickStats) error {
	next.CopyFrom(prev)

	DetectWalls(next)
	PressureFlow(prev, next, tuning)

	for index := 0; index < next.Len(); index++ {
		x, y := next.Coords(index)
		prevTile := prev.GetTile(index)
		nextTile := next.GetTile(index)

		if err := ApplyTileMode(nextTile, environments, tuning); err != nil {
			return &TickError{Z: z, Index: index, Wrapped: err}
		}

		RescaleMomentum(prev, next, index, tuning)

		if nextTile.Mode.Kind == ModeSpace {
			// Space doesn't superconduct, react, need sanitizing, or
			// count as interesting.
			continue
		}

		for axis, step := range AxesStep {
			neighborIndex, ok := next.MaybeIndex(x+step[0], y+step[1])
			if !ok {
				continue
			}
			if next.GetTile(neighborIndex).Mode.Kind == ModeSpace {
				continue
			}
			me, them := next.GetPairMut(index, neighborIndex)
			Superconduct(me, them, axis == AxisX, false, tuning)
		}

		fuelBurnt := React(nextTile, true, tuning)
		fuelBurnt += React(nextTile, false, tuning)

		sanitized := Sanitize(nextTile, prevTile, tuning)

		if stats != nil {
			stats.FuelBurnt += fuelBurnt
			if sanitized {
				stats.Sanitized++
			}
		}

		if interesting := CheckInteresting(prevTile, nextTile, x, y, z, fuelBurnt, next, index, tuning); interesting != nil {
			bag.Push(*interesting)
		}
	}

	return nil
}
