package scenario

import (
	"context"
	"testing"

	"github.com/kelvinreef/atmosim/internal/atmos"
)

func TestTuningSweepRecordsOnePointPerValue(t *testing.T) {
	sweep := &TuningSweep{
		Scenario: "pressure-release",
		Field: func(t *atmos.Tuning, v float32) {
			t.MomentumDecay = v
		},
		Min:   0.5,
		Max:   0.9,
		Steps: 3,
		Ticks: 5,
	}

	results, err := sweep.Run(context.Background(), NewRegistry(), tuning())
	if err != nil {
		t.Fatalf("sweep run returned error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Value != 0.5 || results[2].Value != 0.9 {
		t.Errorf("unexpected sweep endpoints: %v, %v", results[0].Value, results[2].Value)
	}
}

func TestTuningSweepRejectsTooFewSteps(t *testing.T) {
	sweep := &TuningSweep{Scenario: "pressure-release", Field: func(t *atmos.Tuning, v float32) {}, Steps: 1, Ticks: 1}
	if _, err := sweep.Run(context.Background(), NewRegistry(), tuning()); err == nil {
		t.Error("expected an error for fewer than 2 steps")
	}
}
