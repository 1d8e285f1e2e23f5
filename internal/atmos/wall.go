package atmos

// DetectWalls recomputes the per-edge Wall flags on next from static
// airtightness and tile modes. This is the only place Wall is written,
// and it runs on next at the start of every tick, reading the static
// fields (Mode, AirtightDirections) that were copied from prev when
// next was reset.
func DetectWalls(next *ZLevel) {
	for myIndex := 0; myIndex < next.Len(); myIndex++ {
		x, y := next.Coords(myIndex)

		for axis, step := range AxesStep {
			theirIndex, ok := next.MaybeIndex(x+step[0], y+step[1])
			if !ok {
				// Edge of the map acts like a wall.
				next.GetTile(myIndex).Wall[axis] = true
				continue
			}

			myTile, theirTile := next.GetPairMut(myIndex, theirIndex)

			if myTile.Mode.Kind == ModeSpace && theirTile.Mode.Kind == ModeSpace {
				// Two adjacent space tiles act as one reservoir.
				myTile.Wall[axis] = true
				continue
			}

			blocked := false
			if axis == AxisX {
				blocked = myTile.AirtightDirections.Has(DirEast) ||
					theirTile.AirtightDirections.Has(DirWest)
			} else {
				blocked = myTile.AirtightDirections.Has(DirNorth) ||
					theirTile.AirtightDirections.Has(DirSouth)
			}

			myTile.Wall[axis] = blocked
		}
	}
}
