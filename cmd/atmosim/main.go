package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kelvinreef/atmosim/internal/atmos"
	"github.com/kelvinreef/atmosim/internal/config"
	"github.com/kelvinreef/atmosim/internal/engine"
	"github.com/kelvinreef/atmosim/internal/metrics"
	"github.com/kelvinreef/atmosim/internal/scenario"
	"github.com/kelvinreef/atmosim/internal/store"
	"github.com/kelvinreef/atmosim/internal/tui"
)

var (
	dataDir    string
	ticks      int
	presetName string
	configFile string
	saveRun    bool
)

// main registers the atmosim command tree and executes it, exiting
// with status 1 if the selected command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "atmosim",
		Short: "tile-based atmospherics simulation lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".atmosim", "data directory for saved runs")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario headlessly and print its summary metrics",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 0, "ticks to run (0 uses the preset/default)")
	runCmd.Flags().StringVar(&presetName, "preset", "default", "preset configuration name")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml, overrides preset)")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "persist the run under --data")

	tuiCmd := &cobra.Command{
		Use:   "tui [scenario]",
		Short: "run a scenario with a live terminal grid view",
		Args:  cobra.ExactArgs(1),
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&ticks, "ticks", 200, "ticks to run before the view stops advancing")
	tuiCmd.Flags().StringVar(&presetName, "preset", "default", "preset configuration name")

	scenarioCmd := &cobra.Command{Use: "scenario", Short: "inspect built-in scenarios"}
	scenarioListCmd := &cobra.Command{
		Use:   "list",
		Short: "list the built-in scenario names",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenario.NewRegistry().List() {
				fmt.Println(name)
			}
			return nil
		},
	}
	scenarioCmd.AddCommand(scenarioListCmd)

	configCmd := &cobra.Command{Use: "config", Short: "work with run configuration files"}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, tuiCmd, scenarioCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(scenarioName string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	cfg := config.GetPreset(scenarioName, presetName)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset %q for scenario %q (available: %v)", presetName, scenarioName, config.ListPresets(scenarioName))
	}
	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]

	cfg, err := loadConfig(scenarioName)
	if err != nil {
		return err
	}
	if ticks > 0 {
		cfg.Ticks = ticks
	}
	tuning := cfg.Resolve()

	registry := scenario.NewRegistry()
	grid, err := registry.Get(scenarioName, tuning)
	if err != nil {
		return err
	}

	bag := atmos.NewBag()
	eng := engine.NewEngine(tuning, nil, bag, 0, nil)
	eng.Seed(grid)
	eng.AddMetric(metrics.NewConservationDrift())
	eng.AddMetric(metrics.NewSanitationRate())
	eng.AddMetric(metrics.NewFuelBurntRate())

	result, err := eng.Run(context.Background(), cfg.Ticks)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "scenario\t%s\n", scenarioName)
	fmt.Fprintf(w, "ticks\t%d\n", result.Ticks)
	for name, value := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.6f\n", name, value)
	}
	w.Flush()

	if saveRun {
		s := store.New(dataDir)
		if err := s.Init(); err != nil {
			return err
		}
		runID, err := s.SaveRun(scenarioName, &cfg.Tuning, result)
		if err != nil {
			return err
		}
		fmt.Printf("saved run %s under %s\n", runID, dataDir)
	}

	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]

	cfg, err := loadConfig(scenarioName)
	if err != nil {
		return err
	}
	tuning := cfg.Resolve()

	registry := scenario.NewRegistry()
	grid, err := registry.Get(scenarioName, tuning)
	if err != nil {
		return err
	}

	bag := atmos.NewBag()
	eng := engine.NewEngine(tuning, nil, bag, 0, nil)
	eng.Seed(grid)

	view := tui.NewGridView(eng, tuning, scenarioName, ticks)
	program := tea.NewProgram(view)
	_, err = program.Run()
	return err
}
