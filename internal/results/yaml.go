package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/artatlas/curator/internal/generation"
)

// RunConfig represents the configuration section of the run YAML
type RunConfig struct {
	RunID      string  `yaml:"runid"`
	Provider   string  `yaml:"provider"`
	Model      string  `yaml:"model"`
	InputPath  string  `yaml:"inputpath"`
	OutputPath string  `yaml:"outputpath"`
	BatchSize  int     `yaml:"batchsize"`
	Delay      float64 `yaml:"delayseconds"`
	Timestamp  string  `yaml:"timestamp"`
}

// CategoryResult represents a single category's fill outcome
type CategoryResult struct {
	Category   string `yaml:"category"`
	Target     int    `yaml:"target"`
	Generated  int    `yaml:"generated"`
	Attempts   int    `yaml:"attempts"`
	Parsed     int    `yaml:"parsed"`
	Duplicates int    `yaml:"duplicates"`
	Discarded  int    `yaml:"discarded"`
	Failures   int    `yaml:"failures"`
	Satisfied  bool   `yaml:"satisfied"`
}

// RunReport represents the complete generation run report
type RunReport struct {
	Config  RunConfig        `yaml:"config"`
	Results []CategoryResult `yaml:"results"`
}

// SaveToYAML saves a generation run report to a YAML file in the runs/ directory
func SaveToYAML(config RunConfig, results []generation.FillResult) error {
	// Create runs directory
	if err := os.MkdirAll("runs", 0755); err != nil {
		return fmt.Errorf("failed to create runs directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	config.Timestamp = timestamp

	report := RunReport{
		Config:  config,
		Results: make([]CategoryResult, 0, len(results)),
	}

	for _, r := range results {
		report.Results = append(report.Results, CategoryResult{
			Category:   string(r.Category),
			Target:     r.Target,
			Generated:  len(r.Records),
			Attempts:   r.Attempts,
			Parsed:     r.Parsed,
			Duplicates: r.Duplicates,
			Discarded:  r.Discarded,
			Failures:   r.Failures,
			Satisfied:  r.Satisfied,
		})
	}

	// Generate filename
	filename := fmt.Sprintf("runs/%s-%s.yaml", config.Model, timestamp)

	// Write YAML
	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("\n✅ Run report saved to: %s\n", absPath)

	return nil
}
