package scenario

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kelvinreef/atmosim/internal/atmos"
	"github.com/kelvinreef/atmosim/internal/engine"
)

// Script describes a scripted sequence of scenario runs, the same
// shape as the teacher's YAML-driven Scenario/ScenarioStep.
type Script struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Steps       []ScriptStep `yaml:"steps"`
}

// ScriptStep names one scenario to build and run for a fixed number of
// ticks. SaveAs, if set, is a hint to the caller for where to persist
// the step's Result; RunScript itself does not write to disk.
type ScriptStep struct {
	Scenario string `yaml:"scenario"`
	Ticks    int    `yaml:"ticks"`
	SaveAs   string `yaml:"save_as"`
}

// LoadScript reads and parses a Script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, err
	}
	return &script, nil
}

// RunScript builds and runs every step of script in order against
// registry, under tuning, sharing one Bag across steps.
func RunScript(ctx context.Context, script *Script, registry *Registry, tuning *atmos.Tuning) ([]*engine.Result, error) {
	results := make([]*engine.Result, 0, len(script.Steps))
	bag := atmos.NewBag()

	for i, step := range script.Steps {
		grid, err := registry.Get(step.Scenario, tuning)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		eng := engine.NewEngine(tuning, nil, bag, int32(i), nil)
		eng.Seed(grid)

		result, err := eng.Run(ctx, step.Ticks)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Scenario, err)
		}

		results = append(results, result)
	}

	return results, nil
}
