package scenario

import (
	"fmt"

	"github.com/kelvinreef/atmosim/internal/atmos"
)

// ZLevelFactory builds the initial (tick-zero) state of a Z-level for a
// named scenario, sized and tuned by tuning.
type ZLevelFactory func(tuning *atmos.Tuning) *atmos.ZLevel

// Registry names the built-in scenarios a host can build and run,
// mirroring the teacher's model/integrator/controller registry.
type Registry struct {
	factories map[string]ZLevelFactory
}

// NewRegistry returns a Registry pre-populated with the canonical
// scenarios: empty-chain, pressure-release, space-vent,
// plasmafire-ignition, hotspot-formation.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]ZLevelFactory)}
	r.register()
	return r
}

func (r *Registry) register() {
	r.factories["empty-chain"] = EmptyChain
	r.factories["pressure-release"] = PressureRelease
	r.factories["space-vent"] = SpaceVent
	r.factories["plasmafire-ignition"] = PlasmafireIgnition
	r.factories["hotspot-formation"] = HotspotFormation
}

// Get builds the named scenario's initial Z-level.
func (r *Registry) Get(name string, tuning *atmos.Tuning) (*atmos.ZLevel, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("scenario: unknown scenario %q", name)
	}
	return factory(tuning), nil
}

// List returns every registered scenario name.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// Register adds or overrides a named factory, letting a host extend the
// registry with its own scenarios.
func (r *Registry) Register(name string, factory ZLevelFactory) {
	r.factories[name] = factory
}
