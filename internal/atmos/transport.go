package atmos

import (
	"math"

	"github.com/kelvinreef/atmosim/internal/springchain"
)

// ProcessChain moves gas along one maximal non-wall run of tiles,
// reading the immutable chain_start..chain_end (inclusive) span of prev
// and writing the redistributed result into next. axis/step select
// which momentum axis and index stride the chain runs along.
func ProcessChain(prev, next *ZLevel, chainStart, chainEnd, axis, step int, tuning *Tuning) {
	tiles := (chainEnd-chainStart)/step + 1
	endOffset := float32(tiles)

	startIsSpace := prev.GetTile(chainStart).Mode.Kind == ModeSpace
	endIsSpace := prev.GetTile(chainEnd).Mode.Kind == ModeSpace

	var totalPressure float32
	for j := 0; j < tiles; j++ {
		totalPressure += prev.GetTile(chainStart + j*step).Pressure(tuning)
	}
	if totalPressure == 0 {
		return
	}

	// 1. Equilibrium positions, one per interior border.
	eq := make([]float32, tiles-1)
	var acc float32
	for j := 0; j < tiles-1; j++ {
		acc += prev.GetTile(chainStart + j*step).Pressure(tuning)
		eq[j] = endOffset * acc / totalPressure
	}

	// 2. Stress and momentum at each border.
	mid := (chainStart + chainEnd) / 2
	for j := 0; j < tiles-1; j++ {
		index := chainStart + j*step

		var leftPosition float32
		if j > 0 {
			leftPosition = eq[j-1]
		}
		position := eq[j]
		rightPosition := endOffset
		if j+1 < len(eq) {
			rightPosition = eq[j+1]
		}

		leftMoles := max32(prev.GetTile(index).Gases.Moles(), tuning.MinimumNonzeroMoles)
		rightMoles := max32(prev.GetTile(index+step).Gases.Moles(), tuning.MinimumNonzeroMoles)

		var stress float32
		switch {
		case startIsSpace && endIsSpace:
			if index < mid {
				stress = leftMoles + rightMoles
			} else {
				stress = -(leftMoles + rightMoles)
			}
		case startIsSpace:
			stress = leftMoles + rightMoles
		case endIsSpace:
			stress = -(leftMoles + rightMoles)
		default:
			stress = -(position-leftPosition-1)*leftMoles + (rightPosition-position-1)*rightMoles
		}

		border := next.GetTile(index)
		border.Momentum[axis] = border.Momentum[axis]*tuning.MomentumDecay - stress
	}

	// 3. Extract half-mass from every chain tile, collecting momentum and
	// mole counts for the solver.
	momentum := make([]float32, tiles-1)
	moleCounts := make([]float32, tiles)
	for j := 0; j < tiles; j++ {
		index := chainStart + j*step
		prevTile := prev.GetTile(index)
		nextTile := next.GetTile(index)

		for g := range nextTile.Gases.Values {
			nextTile.Gases.Values[g] -= prevTile.Gases.Values[g] / 2
		}
		nextTile.Gases.SetDirty()
		nextTile.ThermalEnergy -= prevTile.ThermalEnergy / 2

		if j < tiles-1 {
			momentum[j] = nextTile.Momentum[axis] * tuning.MomentumMultiplier
		}
		moleCounts[j] = max32(prevTile.Gases.Moles(), tuning.MinimumNonzeroMoles)
	}

	// 4. Solve, then append the fixed right wall.
	displacements := springchain.Solve(moleCounts, momentum, startIsSpace, endIsSpace)
	displacements = append(displacements, 0)

	// 5. Redistribute each tile's extracted half-mass over the tiles its
	// displaced border range overlaps.
	var left float32
	for i := 0; i < tiles; i++ {
		right := min32(float32(i+1)+displacements[i], endOffset)

		startOff := int(math.Floor(float64(left + 0.0001)))
		endOff := int(math.Floor(float64(right - 0.0001)))
		if endOff < 0 {
			endOff = 0
		}

		prevTile := prev.GetTile(chainStart + i*step)

		if startOff >= endOff {
			depositHalfMass(next.GetTile(chainStart+endOff*step), prevTile, 1.0)
		} else {
			size := right - left
			for off := startOff; off <= endOff; off++ {
				var share float32
				switch off {
				case startOff:
					share = float32(startOff+1) - left
				case endOff:
					share = right - float32(endOff)
				default:
					share = 1.0
				}
				depositHalfMass(next.GetTile(chainStart+off*step), prevTile, share/size)
			}
		}

		left = max32(left, right)
	}
}

// depositHalfMass adds fraction * (prevTile's pre-extraction half-mass)
// to dst.
func depositHalfMass(dst, prevTile *Tile, fraction float32) {
	for g := range dst.Gases.Values {
		dst.Gases.Values[g] += 0.5 * prevTile.Gases.Values[g] * fraction
	}
	dst.Gases.SetDirty()
	dst.ThermalEnergy += 0.5 * prevTile.ThermalEnergy * fraction
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
