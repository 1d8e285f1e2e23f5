package scenario

import "github.com/kelvinreef/atmosim/internal/springchain"

// SolverConvergence runs the spring-chain solver directly (S6), outside
// any Z-level, and reports the largest displacement gap between
// adjacent interior masses — the ordering invariant the solver's
// reduction-factor rescale exists to guarantee.
func SolverConvergence(k, f []float32, unboundStart, unboundEnd bool) (displacements []float32, maxGap float32) {
	displacements = springchain.Solve(k, f, unboundStart, unboundEnd)
	for i := 1; i < len(displacements); i++ {
		gap := displacements[i] - displacements[i-1]
		if gap < 0 {
			gap = -gap
		}
		if gap > maxGap {
			maxGap = gap
		}
	}
	return displacements, maxGap
}
