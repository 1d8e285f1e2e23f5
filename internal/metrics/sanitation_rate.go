package metrics

import "github.com/kelvinreef/atmosim/internal/engine"

// SanitationRate is the fraction of tiles sanitized per tick, averaged
// over a run. A healthy tuning keeps this near zero; a rate that climbs
// over a run usually means a tuning change pushed the solver into
// instability.
type SanitationRate struct {
	name    string
	tiles   int
	samples int
}

func NewSanitationRate() *SanitationRate {
	return &SanitationRate{name: "sanitation_rate"}
}

func (s *SanitationRate) Name() string { return s.name }

func (s *SanitationRate) Observe(sample engine.TickSample) {
	if sample.Grid == nil || sample.Grid.Len() == 0 {
		return
	}
	s.tiles += sample.Sanitized
	s.samples += sample.Grid.Len()
}

func (s *SanitationRate) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.tiles) / float64(s.samples)
}

func (s *SanitationRate) Reset() {
	s.tiles = 0
	s.samples = 0
}
