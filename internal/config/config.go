package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kelvinreef/atmosim/internal/atmos"
)

const (
	DefaultTicks = 100
)

// Config is the host-facing, YAML-serializable configuration for a run:
// which scenario to build the Z-level from, how many ticks to run it,
// and every tuning constant the engine lets a host override.
type Config struct {
	Scenario string `yaml:"scenario"`
	Ticks    int    `yaml:"ticks"`
	Tuning   Tuning `yaml:"tuning"`
}

// Tuning mirrors atmos.Tuning field-for-field with YAML tags, so a run
// file only needs to name the constants it wants to override.
type Tuning struct {
	MapSize  int `yaml:"map_size"`
	GasCount int `yaml:"gas_count"`

	SpecificHeats []float32 `yaml:"specific_heats,omitempty"`

	MinimumNonzeroMoles float32 `yaml:"minimum_nonzero_moles"`
	MomentumDecay       float32 `yaml:"momentum_decay"`
	MomentumMultiplier  float32 `yaml:"momentum_multiplier"`
	WindMultiplier      float32 `yaml:"wind_multiplier"`

	TCMB                        float32 `yaml:"tcmb"`
	T20C                        float32 `yaml:"t20c"`
	SpaceCoolingCapacity        float32 `yaml:"space_cooling_capacity"`
	OpenHeatTransferCoefficient float32 `yaml:"open_heat_transfer_coefficient"`

	AgentBConversionTemp   float32 `yaml:"agent_b_conversion_temp"`
	AgentBConversionEnergy float32 `yaml:"agent_b_conversion_energy"`

	SleepingGasBreakdownTemp float32 `yaml:"sleeping_gas_breakdown_temp"`
	NitrousBreakdownEnergy   float32 `yaml:"nitrous_breakdown_energy"`

	PlasmaBurnMinTemp                    float32 `yaml:"plasma_burn_min_temp"`
	PlasmaBurnOptimalTemp                float32 `yaml:"plasma_burn_optimal_temp"`
	PlasmaBurnEnergy                     float32 `yaml:"plasma_burn_energy"`
	PlasmaBurnWorstOxygenPerPlasma       float32 `yaml:"plasma_burn_worst_oxygen_per_plasma"`
	PlasmaBurnBestOxygenPerPlasma        float32 `yaml:"plasma_burn_best_oxygen_per_plasma"`
	PlasmaBurnRequiredOxygenAvailability float32 `yaml:"plasma_burn_required_oxygen_availability"`
	PlasmaBurnMaxRatio                   float32 `yaml:"plasma_burn_max_ratio"`

	ReactionSignificanceMoles float32 `yaml:"reaction_significance_moles"`
	ReactionSignificanceRatio float32 `yaml:"reaction_significance_ratio"`

	ToxinsMinFireAndVisibilityMoles float32 `yaml:"toxins_min_fire_and_visibility_moles"`
	SleepingGasVisibilityMoles      float32 `yaml:"sleeping_gas_visibility_moles"`
	OxygenMinFireMoles              float32 `yaml:"oxygen_min_fire_moles"`
}

// DefaultConfig returns the canonical station-atmospherics tuning
// wrapped in a short pressure-release run.
func DefaultConfig() *Config {
	return &Config{
		Scenario: "pressure-release",
		Ticks:    DefaultTicks,
		Tuning:   fromAtmosTuning(atmos.DefaultTuning()),
	}
}

// Resolve converts c's Tuning back into the engine's atmos.Tuning,
// falling back to the default specific heats if the config didn't name
// any (so a host can override a handful of constants without having to
// restate all six gas identities).
func (c *Config) Resolve() *atmos.Tuning {
	t := c.Tuning
	specificHeats := t.SpecificHeats
	if len(specificHeats) == 0 {
		specificHeats = atmos.DefaultTuning().SpecificHeats
	}

	return &atmos.Tuning{
		MapSize:       t.MapSize,
		GasCount:      t.GasCount,
		SpecificHeats: specificHeats,

		MinimumNonzeroMoles: t.MinimumNonzeroMoles,
		MomentumDecay:       t.MomentumDecay,
		MomentumMultiplier:  t.MomentumMultiplier,
		WindMultiplier:      t.WindMultiplier,

		TCMB:                        t.TCMB,
		T20C:                        t.T20C,
		SpaceCoolingCapacity:        t.SpaceCoolingCapacity,
		OpenHeatTransferCoefficient: t.OpenHeatTransferCoefficient,

		AgentBConversionTemp:   t.AgentBConversionTemp,
		AgentBConversionEnergy: t.AgentBConversionEnergy,

		SleepingGasBreakdownTemp: t.SleepingGasBreakdownTemp,
		NitrousBreakdownEnergy:   t.NitrousBreakdownEnergy,

		PlasmaBurnMinTemp:                    t.PlasmaBurnMinTemp,
		PlasmaBurnOptimalTemp:                t.PlasmaBurnOptimalTemp,
		PlasmaBurnEnergy:                     t.PlasmaBurnEnergy,
		PlasmaBurnWorstOxygenPerPlasma:       t.PlasmaBurnWorstOxygenPerPlasma,
		PlasmaBurnBestOxygenPerPlasma:        t.PlasmaBurnBestOxygenPerPlasma,
		PlasmaBurnRequiredOxygenAvailability: t.PlasmaBurnRequiredOxygenAvailability,
		PlasmaBurnMaxRatio:                   t.PlasmaBurnMaxRatio,

		ReactionSignificanceMoles: t.ReactionSignificanceMoles,
		ReactionSignificanceRatio: t.ReactionSignificanceRatio,

		ToxinsMinFireAndVisibilityMoles: t.ToxinsMinFireAndVisibilityMoles,
		SleepingGasVisibilityMoles:      t.SleepingGasVisibilityMoles,
		OxygenMinFireMoles:              t.OxygenMinFireMoles,
	}
}

func fromAtmosTuning(t *atmos.Tuning) Tuning {
	return Tuning{
		MapSize:       t.MapSize,
		GasCount:      t.GasCount,
		SpecificHeats: t.SpecificHeats,

		MinimumNonzeroMoles: t.MinimumNonzeroMoles,
		MomentumDecay:       t.MomentumDecay,
		MomentumMultiplier:  t.MomentumMultiplier,
		WindMultiplier:      t.WindMultiplier,

		TCMB:                        t.TCMB,
		T20C:                        t.T20C,
		SpaceCoolingCapacity:        t.SpaceCoolingCapacity,
		OpenHeatTransferCoefficient: t.OpenHeatTransferCoefficient,

		AgentBConversionTemp:   t.AgentBConversionTemp,
		AgentBConversionEnergy: t.AgentBConversionEnergy,

		SleepingGasBreakdownTemp: t.SleepingGasBreakdownTemp,
		NitrousBreakdownEnergy:   t.NitrousBreakdownEnergy,

		PlasmaBurnMinTemp:                    t.PlasmaBurnMinTemp,
		PlasmaBurnOptimalTemp:                t.PlasmaBurnOptimalTemp,
		PlasmaBurnEnergy:                     t.PlasmaBurnEnergy,
		PlasmaBurnWorstOxygenPerPlasma:       t.PlasmaBurnWorstOxygenPerPlasma,
		PlasmaBurnBestOxygenPerPlasma:        t.PlasmaBurnBestOxygenPerPlasma,
		PlasmaBurnRequiredOxygenAvailability: t.PlasmaBurnRequiredOxygenAvailability,
		PlasmaBurnMaxRatio:                   t.PlasmaBurnMaxRatio,

		ReactionSignificanceMoles: t.ReactionSignificanceMoles,
		ReactionSignificanceRatio: t.ReactionSignificanceRatio,

		ToxinsMinFireAndVisibilityMoles: t.ToxinsMinFireAndVisibilityMoles,
		SleepingGasVisibilityMoles:      t.SleepingGasVisibilityMoles,
		OxygenMinFireMoles:              t.OxygenMinFireMoles,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
