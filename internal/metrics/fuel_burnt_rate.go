package metrics

import "github.com/kelvinreef/atmosim/internal/engine"

// FuelBurntRate is the mean fuel_burnt across all ticks of a run,
// tracking how much combustion activity the grid saw.
type FuelBurntRate struct {
	name    string
	sum     float64
	samples int
}

func NewFuelBurntRate() *FuelBurntRate {
	return &FuelBurntRate{name: "fuel_burnt_rate"}
}

func (f *FuelBurntRate) Name() string { return f.name }

func (f *FuelBurntRate) Observe(s engine.TickSample) {
	f.sum += float64(s.FuelBurnt)
	f.samples++
}

func (f *FuelBurntRate) Value() float64 {
	if f.samples == 0 {
		return 0
	}
	return f.sum / float64(f.samples)
}

func (f *FuelBurntRate) Reset() {
	f.sum = 0
	f.samples = 0
}
