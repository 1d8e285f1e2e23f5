package springchain

import "testing"

const displacementTolerance = 0.1

func approxEqual(t *testing.T, got, want float32, msg string) {
	t.Helper()
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	if diff > displacementTolerance {
		t.Errorf("%s: got %v, want %v (tolerance %v)", msg, got, want, displacementTolerance)
	}
}

func TestApproximateDisplacementsSimple(t *testing.T) {
	k := []float32{1, 1, 1, 1}
	f := []float32{0, 0, 4.0 / 3.0}
	d := approximateDisplacements(k, f)
	if len(d) != 3 {
		t.Fatalf("len(d) = %d, want 3", len(d))
	}
	approxEqual(t, d[0], 1.0/3.0, "d[0]")
	approxEqual(t, d[1], 2.0/3.0, "d[1]")
	approxEqual(t, d[2], 1.0, "d[2]")
}

func TestApproximateDisplacementsDoesntDisplaceWithoutForces(t *testing.T) {
	k := []float32{1, 2, 3, 4}
	f := []float32{0, 0, 0}
	d := approximateDisplacements(k, f)
	for i, v := range d {
		if v != 0 {
			t.Errorf("d[%d] = %v, want 0", i, v)
		}
	}
}

func TestApproximateDisplacementsOpposingForces(t *testing.T) {
	k := []float32{1, 1, 1}
	f := []float32{1.5, -1.5}
	d := approximateDisplacements(k, f)
	approxEqual(t, d[0], 0.5, "d[0]")
	approxEqual(t, d[1], -0.5, "d[1]")
}

func TestApproximateDisplacementsRespectsSpringConstants(t *testing.T) {
	k := []float32{1, 1, 2, 2}
	f := []float32{0, 3, 0}
	d := approximateDisplacements(k, f)
	approxEqual(t, d[0], 1.0, "d[0]")
	approxEqual(t, d[1], 2.0, "d[1]")
	approxEqual(t, d[2], 1.0, "d[2]")
}

func TestReductionFactorSimple(t *testing.T) {
	if got := reductionFactor([]float32{2.0}, false, false); got != 2.0 {
		t.Errorf("got %v, want 2.0", got)
	}
}

func TestReductionFactorOpposingForces(t *testing.T) {
	if got := reductionFactor([]float32{1.0, -1.0}, false, false); got != 2.0 {
		t.Errorf("got %v, want 2.0", got)
	}
}

func TestReductionFactorUnboundRight(t *testing.T) {
	if got := reductionFactor([]float32{2.0}, false, true); got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
}

func TestReductionFactorUnboundLeft(t *testing.T) {
	if got := reductionFactor([]float32{-2.0}, true, false); got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
}

func TestReductionFactorNoInversionIsIdentity(t *testing.T) {
	if got := reductionFactor(nil, false, false); got != 1.0 {
		t.Errorf("got %v, want 1.0", got)
	}
}

func TestSolveSimple(t *testing.T) {
	k := []float32{1, 1, 1, 1}
	f := []float32{0, 0, 2.0}
	d := Solve(k, f, false, false)
	if len(d) != 3 {
		t.Fatalf("len(d) = %d, want 3", len(d))
	}
	approxEqual(t, d[0], 1.0/3.0, "d[0]")
	approxEqual(t, d[1], 2.0/3.0, "d[1]")
	approxEqual(t, d[2], 1.0, "d[2]")
}

func TestSolveWithReduction(t *testing.T) {
	k := []float32{1, 1, 1, 1}
	f := []float32{0, 0, 4.0}
	d := Solve(k, f, false, false)
	if len(d) != 3 {
		t.Fatalf("len(d) = %d, want 3", len(d))
	}
	approxEqual(t, d[0], 1.0/3.0, "d[0]")
	approxEqual(t, d[1], 2.0/3.0, "d[1]")
	approxEqual(t, d[2], 1.0, "d[2]")
}

// TestSolveOrderingInvariant checks property 5 from the spec's testable
// properties list across a spread of random-ish inputs: the returned
// displacements must never invert (x[i-1] <= x[i]+1), and bounded walls
// must stay within [-1, 1].
func TestSolveOrderingInvariant(t *testing.T) {
	cases := []struct {
		k            []float32
		f            []float32
		unboundStart bool
		unboundEnd   bool
	}{
		{[]float32{1, 1, 1, 1, 1}, []float32{10, -10, 10}, false, false},
		{[]float32{0.01, 5, 0.01, 9}, []float32{3, -3}, true, false},
		{[]float32{2, 2, 2}, []float32{100}, false, true},
		{[]float32{1, 1}, []float32{}, false, false},
	}

	for i, c := range cases {
		d := Solve(c.k, c.f, c.unboundStart, c.unboundEnd)
		for j := 1; j < len(d); j++ {
			if d[j-1] > d[j]+1.0+1e-3 {
				t.Errorf("case %d: d[%d]=%v > d[%d]+1=%v", i, j-1, d[j-1], j, d[j]+1)
			}
		}
		if !c.unboundStart && len(d) > 0 && d[0] < -1.0-1e-3 {
			t.Errorf("case %d: d[0]=%v < -1 while bounded at start", i, d[0])
		}
		if !c.unboundEnd && len(d) > 0 && d[len(d)-1] > 1.0+1e-3 {
			t.Errorf("case %d: d[last]=%v > 1 while bounded at end", i, d[len(d)-1])
		}
	}
}
