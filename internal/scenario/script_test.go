package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScriptParsesSteps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	yaml := "name: smoke\nsteps:\n  - scenario: pressure-release\n    ticks: 3\n  - scenario: space-vent\n    ticks: 2\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	script, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript returned error: %v", err)
	}
	if len(script.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(script.Steps))
	}
	if script.Steps[0].Scenario != "pressure-release" || script.Steps[0].Ticks != 3 {
		t.Errorf("unexpected first step: %+v", script.Steps[0])
	}
}

func TestRunScriptExecutesEachStep(t *testing.T) {
	script := &Script{
		Name: "smoke",
		Steps: []ScriptStep{
			{Scenario: "pressure-release", Ticks: 3},
			{Scenario: "space-vent", Ticks: 2},
		},
	}

	results, err := RunScript(context.Background(), script, NewRegistry(), tuning())
	if err != nil {
		t.Fatalf("RunScript returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Ticks != 3 || results[1].Ticks != 2 {
		t.Errorf("unexpected tick counts: %+v %+v", results[0], results[1])
	}
}

func TestRunScriptPropagatesUnknownScenario(t *testing.T) {
	script := &Script{Steps: []ScriptStep{{Scenario: "nonexistent", Ticks: 1}}}
	if _, err := RunScript(context.Background(), script, NewRegistry(), tuning()); err == nil {
		t.Error("expected an error for an unknown scenario")
	}
}
