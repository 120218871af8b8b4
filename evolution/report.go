package evolution

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0"

// Report is the JSON record of a finished batch. It describes results only;
// runs cannot be resumed from it.
type Report struct {
	Config    Config      `json:"config"`
	Runs      []RunReport `json:"runs"`
	Timestamp time.Time   `json:"timestamp"`
	Version   string      `json:"version"`
}

// RunReport is the serializable outcome of one run.
type RunReport struct {
	RunID          string            `json:"run_id"`
	RandomSeed     int64             `json:"random_seed"`
	Generations    int               `json:"generations"`
	Fittest        []int             `json:"fittest"`
	FittestFitness float64           `json:"fittest_fitness"`
	History        []GenerationStats `json:"history,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// NewReport collects batch results. config is the shared base configuration.
func NewReport(config Config, jobs []BatchJob, results []BatchResult) *Report {
	report := &Report{
		Config:    config,
		Runs:      make([]RunReport, len(results)),
		Timestamp: time.Now(),
		Version:   ReportVersion,
	}
	for i, r := range results {
		run := RunReport{
			RunID:          r.Summary.RunID,
			Generations:    r.Summary.Generations,
			Fittest:        r.Summary.Fittest,
			FittestFitness: r.Summary.FittestFitness,
			History:        r.Summary.History,
			Error:          r.Summary.Error,
		}
		if r.Index < len(jobs) {
			run.RandomSeed = jobs[r.Index].Config.RandomSeed
		}
		report.Runs[i] = run
	}
	return report
}

// WriteReport saves report to path as indented JSON.
func WriteReport(path string, report *Report) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	// Write to temp file first, then rename (atomic)
	tempPath := path + ".tmp"
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to finalize report: %w", err)
	}

	return nil
}

// LoadReport reads a report written by WriteReport.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}
