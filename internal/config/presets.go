package config

import "github.com/kelvinreef/atmosim/internal/atmos"

// Presets are small, ready-to-run tunings for each built-in scenario,
// distinguished by grid size and tick count rather than physical
// constants (those stay at the station-atmospherics default unless a
// host overrides them explicitly).
var Presets = map[string]map[string]*Config{
	"empty-chain": {
		"default": {Scenario: "empty-chain", Ticks: 10, Tuning: smallTuning(3)},
	},
	"pressure-release": {
		"default": {Scenario: "pressure-release", Ticks: 50, Tuning: smallTuning(3)},
		"long":    {Scenario: "pressure-release", Ticks: 500, Tuning: smallTuning(16)},
	},
	"space-vent": {
		"default": {Scenario: "space-vent", Ticks: 50, Tuning: smallTuning(3)},
	},
	"plasmafire-ignition": {
		"default": {Scenario: "plasmafire-ignition", Ticks: 200, Tuning: smallTuning(8)},
	},
	"hotspot-formation": {
		"default": {Scenario: "hotspot-formation", Ticks: 100, Tuning: smallTuning(8)},
	},
}

func smallTuning(mapSize int) Tuning {
	t := fromAtmosTuning(atmos.DefaultTuning())
	t.MapSize = mapSize
	return t
}

func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
