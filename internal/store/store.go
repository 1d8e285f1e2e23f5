package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kelvinreef/atmosim/internal/config"
	"github.com/kelvinreef/atmosim/internal/engine"
)

// Store persists completed runs under a base directory, one
// timestamped subdirectory per run holding a metadata.json and a
// ticks.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the base directory if it doesn't already exist.
func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is the JSON sidecar for one run: which scenario it was,
// the tuning it ran under, and the aggregated metric values.
type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Ticks     int                `json:"ticks"`
	Tuning    config.Tuning      `json:"tuning"`
	Metrics   map[string]float64 `json:"metrics"`
}

// SaveRun writes metadata.json (tuning snapshot + aggregated metrics)
// and ticks.csv (per-tick sanitation count, interesting-tile count,
// and fuel burnt) under a fresh timestamped run directory.
func (s *Store) SaveRun(scenario string, tuning *config.Tuning, result *engine.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Ticks:     result.Ticks,
		Tuning:    *tuning,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeTicksCSV(filepath.Join(runDir, "ticks.csv"), result); err != nil {
		return "", err
	}

	return runID, nil
}

func writeTicksCSV(path string, result *engine.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"tick", "sanitized", "interesting", "fuel_burnt"}); err != nil {
		return err
	}

	for i := 0; i < result.Ticks; i++ {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(result.Sanitized[i]),
			strconv.Itoa(result.Interesting[i]),
			strconv.FormatFloat(float64(result.FuelBurnt[i]), 'f', 6, 32),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// List returns the metadata of every run saved under the base
// directory.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

// Load reads back a single run's metadata by its run ID.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
