package metrics

import (
	"math"

	"github.com/kelvinreef/atmosim/internal/engine"
)

// ConservationDrift tracks the relative drift in total moles and total
// thermal energy across a Z-level over a run of ticks, the production
// form of the solver's mass/energy conservation property: compare the
// grid's totals at every Observe against those at the first, keeping
// the largest relative drift seen.
type ConservationDrift struct {
	name string

	haveInitial  bool
	initialMoles float64
	initialEnergy float64

	currentMoles  float64
	currentEnergy float64
	maxDrift      float64
}

func NewConservationDrift() *ConservationDrift {
	return &ConservationDrift{name: "conservation_drift"}
}

func (c *ConservationDrift) Name() string { return c.name }

func (c *ConservationDrift) Observe(s engine.TickSample) {
	if s.Grid == nil {
		return
	}

	var moles, energy float64
	for i := 0; i < s.Grid.Len(); i++ {
		tile := s.Grid.GetTile(i)
		moles += float64(tile.Gases.Moles())
		energy += float64(tile.ThermalEnergy)
	}

	if !c.haveInitial {
		c.initialMoles = moles
		c.initialEnergy = energy
		c.haveInitial = true
	}
	c.currentMoles = moles
	c.currentEnergy = energy

	if c.initialMoles != 0 {
		drift := math.Abs(c.currentMoles-c.initialMoles) / math.Abs(c.initialMoles)
		c.maxDrift = math.Max(c.maxDrift, drift)
	}
	if c.initialEnergy != 0 {
		drift := math.Abs(c.currentEnergy-c.initialEnergy) / math.Abs(c.initialEnergy)
		c.maxDrift = math.Max(c.maxDrift, drift)
	}
}

// Value returns the largest relative drift observed in either total
// moles or total thermal energy since the last Reset.
func (c *ConservationDrift) Value() float64 { return c.maxDrift }

func (c *ConservationDrift) Reset() {
	c.haveInitial = false
	c.initialMoles = 0
	c.initialEnergy = 0
	c.currentMoles = 0
	c.currentEnergy = 0
	c.maxDrift = 0
}
