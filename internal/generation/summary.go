package generation

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/artatlas/curator/internal/artwork"
	"github.com/artatlas/curator/internal/dataset"
)

// RunSummary aggregates a generation run for console and JSON reporting.
type RunSummary struct {
	RunID         string            `json:"runId,omitempty"`
	RunDate       time.Time         `json:"runDate"`
	Provider      string            `json:"provider"`
	Model         string            `json:"model"`
	OriginalCount int               `json:"originalCount"`
	Generated     int               `json:"generated"`
	Total         int               `json:"total"`
	Categories    []CategorySummary `json:"categories"`
}

// CategorySummary reports one category's final count against its target.
type CategorySummary struct {
	Category   artwork.Category `json:"category"`
	Count      int              `json:"count"`
	Target     int              `json:"target"`
	Satisfied  bool             `json:"satisfied"`
	Attempts   int              `json:"attempts,omitempty"`
	Duplicates int              `json:"duplicates,omitempty"`
	Failures   int              `json:"failures,omitempty"`
}

// NewRunSummary builds a RunSummary from the merged document and the
// per-category fill results.
func NewRunSummary(doc *dataset.Document, targets Targets, results []FillResult) *RunSummary {
	summary := &RunSummary{
		RunDate: time.Now(),
		Total:   len(doc.Artworks),
	}
	if doc.Metadata != nil {
		summary.RunID = doc.Metadata.RunID
		summary.Provider = doc.Metadata.Provider
		summary.Model = doc.Metadata.Model
		summary.OriginalCount = doc.Metadata.OriginalCount
		summary.Generated = doc.Metadata.AdditionalGenerated
	}

	byCategory := make(map[artwork.Category]FillResult, len(results))
	for _, result := range results {
		byCategory[result.Category] = result
	}

	counts := artwork.CountByCategory(doc.Artworks)
	for _, category := range artwork.Categories() {
		target := targets[category]
		cs := CategorySummary{
			Category:  category,
			Count:     counts[category],
			Target:    target,
			Satisfied: counts[category] >= target,
		}
		if result, ok := byCategory[category]; ok {
			cs.Attempts = result.Attempts
			cs.Duplicates = result.Duplicates
			cs.Failures = result.Failures
		}
		summary.Categories = append(summary.Categories, cs)
	}
	return summary
}

// PrintSummary prints a human-readable summary of the run
func (s *RunSummary) PrintSummary() {
	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("Generation Complete!")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Run Date: %s\n", s.RunDate.Format("2006-01-02 15:04:05"))
	fmt.Printf("Provider: %s\n", s.Provider)
	fmt.Printf("Model: %s\n", s.Model)
	fmt.Printf("Total artworks: %d (%d existing + %d new)\n", s.Total, s.OriginalCount, s.Generated)
	fmt.Println()

	fmt.Println("CATEGORY TOTALS")
	fmt.Println(strings.Repeat("-", 70))
	for _, c := range s.Categories {
		marker := "✓"
		if !c.Satisfied {
			marker = "⚠"
		}
		line := fmt.Sprintf("  %-14s %d/%d %s", string(c.Category)+":", c.Count, c.Target, marker)
		if c.Attempts > 0 {
			line += fmt.Sprintf("  (attempts %d, duplicates %d, failures %d)", c.Attempts, c.Duplicates, c.Failures)
		}
		fmt.Println(line)
	}
	fmt.Println(strings.Repeat("=", 70))
}

// SaveToJSON saves the run summary to a JSON file
func (s *RunSummary) SaveToJSON(filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary to JSON: %w", err)
	}

	return nil
}
