package engine

import (
	"context"
	"testing"

	"github.com/kelvinreef/atmosim/internal/atmos"
)

func TestEnsembleRunsMembersConcurrentlyIntoSharedBag(t *testing.T) {
	tuning := smallTuning()
	bag := atmos.NewBag()

	members := make([]*Engine, 4)
	for i := range members {
		members[i] = NewEngine(tuning, nil, bag, int32(i), nil)
	}
	ensemble := NewEnsemble(members...)

	results, err := ensemble.Run(context.Background(), 3)
	if err != nil {
		t.Fatalf("Ensemble.Run returned error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if len(r.Sanitized) != 3 {
			t.Errorf("member %d: expected 3 ticks recorded, got %d", i, len(r.Sanitized))
		}
	}
}

func TestEnsembleReturnsFirstMemberError(t *testing.T) {
	tuning := smallTuning()
	bag := atmos.NewBag()

	good := NewEngine(tuning, nil, bag, 0, nil)
	bad := NewEngine(tuning, nil, bag, 1, nil)
	grid := atmos.NewZLevel(tuning)
	grid.GetTile(0).Mode = atmos.ExposedTo(99)
	bad.Seed(grid)

	ensemble := NewEnsemble(good, bad)
	if _, err := ensemble.Run(context.Background(), 2); err == nil {
		t.Error("expected an error from the member with an invalid environment id")
	}
}
