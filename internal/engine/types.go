package engine

import "github.com/kelvinreef/atmosim/internal/atmos"

// TickSample is what a Metric or Observer sees after each tick: the
// post-tick grid plus the per-tick counters a host would want to chart
// alongside it.
type TickSample struct {
	Tick      int
	Z         int32
	Grid      *atmos.ZLevel
	Sanitized int
	FuelBurnt float32
	Drained   []atmos.InterestingTile
}

// Metric observes a stream of TickSamples and reduces them to one
// number, the same Observe/Value/Reset shape the metrics package uses
// throughout.
type Metric interface {
	Name() string
	Observe(s TickSample)
	Value() float64
	Reset()
}

// Observer reacts to every tick without reducing to a number — a TUI
// frame redraw, a CSV row append.
type Observer interface {
	OnTick(s TickSample)
}

// Result is what Run returns: the per-tick counters in order, plus the
// final value of every registered Metric.
type Result struct {
	Ticks     int
	Sanitized []int
	FuelBurnt []float32
	Interesting []int
	Metrics   map[string]float64
}
