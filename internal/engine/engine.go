package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kelvinreef/atmosim/internal/atmos"
)

// Engine owns one Z-level's double-buffered grid, its environment
// table, and a shared Bag. It runs the tick pipeline and swaps prev/next
// on success, same life cycle Simulator.Run gives a single trajectory.
type Engine struct {
	z            int32
	prev, next   *atmos.ZLevel
	environments []atmos.Tile
	bag          *atmos.Bag
	tuning       *atmos.Tuning
	log          *logrus.Logger

	tilePool     *TilePool
	pendingDrain []atmos.InterestingTile

	metrics   []Metric
	observers []Observer
}

// NewEngine wires a fresh prev/next pair sized by tuning. log may be
// nil, in which case logrus.StandardLogger() is used.
func NewEngine(tuning *atmos.Tuning, environments []atmos.Tile, bag *atmos.Bag, z int32, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		z:            z,
		prev:         atmos.NewZLevel(tuning),
		next:         atmos.NewZLevel(tuning),
		environments: environments,
		bag:          bag,
		tuning:       tuning,
		log:          log,
		tilePool:     NewTilePool(16),
	}
}

// Seed replaces the engine's prev grid wholesale — how a scenario
// factory installs its initial gas distribution before the first Tick.
func (e *Engine) Seed(grid *atmos.ZLevel) { e.prev = grid }

// Grid returns the current authoritative (post-swap) Z-level.
func (e *Engine) Grid() *atmos.ZLevel { return e.prev }

func (e *Engine) AddMetric(m Metric)     { e.metrics = append(e.metrics, m) }
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Tick runs exactly one tick of the pipeline and swaps prev/next on
// success. ctx is only checked before the tick starts — cancellation
// mid-tick is not supported, matching the pipeline's single-pass
// traversal order.
func (e *Engine) Tick(ctx context.Context, tickNum int) (TickSample, error) {
	select {
	case <-ctx.Done():
		return TickSample{}, ctx.Err()
	default:
	}

	if e.pendingDrain != nil {
		e.tilePool.Put(e.pendingDrain)
		e.pendingDrain = nil
	}

	var stats atmos.TickStats
	if err := atmos.Tick(e.prev, e.next, e.environments, e.bag, e.z, e.tuning, &stats); err != nil {
		e.log.WithFields(logrus.Fields{"z": e.z, "tick": tickNum}).Error(err)
		return TickSample{}, err
	}

	e.prev, e.next = e.next, e.prev

	drained := e.bag.DrainInto(e.tilePool.Get())
	e.pendingDrain = drained

	sample := TickSample{Tick: tickNum, Z: e.z, Grid: e.prev, Sanitized: stats.Sanitized, FuelBurnt: stats.FuelBurnt, Drained: drained}

	for _, m := range e.metrics {
		m.Observe(sample)
	}
	for _, o := range e.observers {
		o.OnTick(sample)
	}

	e.log.WithFields(logrus.Fields{
		"z":           e.z,
		"tick":        tickNum,
		"sanitized":   stats.Sanitized,
		"interesting": len(drained),
	}).Debug("tick complete")

	if stats.Sanitized > e.prev.Len()/4 {
		e.log.WithFields(logrus.Fields{"z": e.z, "tick": tickNum, "sanitized": stats.Sanitized}).Warn("sanitation spike")
	}

	return sample, nil
}

// Run advances the engine n ticks, collecting per-tick counters and
// final metric values into a Result.
func (e *Engine) Run(ctx context.Context, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("engine: ticks must be positive, got %d", n)
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	result := &Result{
		Ticks:       n,
		Sanitized:   make([]int, 0, n),
		FuelBurnt:   make([]float32, 0, n),
		Interesting: make([]int, 0, n),
		Metrics:     make(map[string]float64),
	}

	for i := 0; i < n; i++ {
		sample, err := e.Tick(ctx, i)
		if err != nil {
			return result, err
		}
		result.Sanitized = append(result.Sanitized, sample.Sanitized)
		result.FuelBurnt = append(result.FuelBurnt, sample.FuelBurnt)
		result.Interesting = append(result.Interesting, len(sample.Drained))
	}

	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
