package scenario

import (
	"context"
	"fmt"

	"github.com/kelvinreef/atmosim/internal/atmos"
	"github.com/kelvinreef/atmosim/internal/engine"
	"github.com/kelvinreef/atmosim/internal/metrics"
)

// TuningSweep runs one scenario across a range of values for a single
// tuning field, recording the resulting conservation drift and
// sanitation rate for each value — a stability sweep for tuning the
// engine's numerics, grounded on the teacher's parameter sweep.
type TuningSweep struct {
	Scenario string
	Field    func(t *atmos.Tuning, value float32)
	Min, Max float32
	Steps    int
	Ticks    int
}

// SweepResult holds the two stability metrics for one parameter value.
type SweepResult struct {
	Value             float32
	ConservationDrift float64
	SanitationRate    float64
}

// Run executes the sweep against registry, starting each value from a
// clone of base.
func (sw *TuningSweep) Run(ctx context.Context, registry *Registry, base *atmos.Tuning) ([]SweepResult, error) {
	if sw.Steps < 2 {
		return nil, fmt.Errorf("scenario: sweep needs at least 2 steps, got %d", sw.Steps)
	}

	results := make([]SweepResult, 0, sw.Steps)
	step := (sw.Max - sw.Min) / float32(sw.Steps-1)

	for i := 0; i < sw.Steps; i++ {
		value := sw.Min + float32(i)*step

		tuning := *base
		sw.Field(&tuning, value)

		grid, err := registry.Get(sw.Scenario, &tuning)
		if err != nil {
			return nil, err
		}

		bag := atmos.NewBag()
		eng := engine.NewEngine(&tuning, nil, bag, 0, nil)
		eng.Seed(grid)

		drift := metrics.NewConservationDrift()
		rate := metrics.NewSanitationRate()
		eng.AddMetric(drift)
		eng.AddMetric(rate)

		if _, err := eng.Run(ctx, sw.Ticks); err != nil {
			return results, fmt.Errorf("sweep value %v: %w", value, err)
		}

		results = append(results, SweepResult{
			Value:             value,
			ConservationDrift: drift.Value(),
			SanitationRate:    rate.Value(),
		})
	}

	return results, nil
}
