package datasetcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artatlas/curator/internal/artwork"
	"github.com/artatlas/curator/internal/dataset"
)

// nearDuplicateThreshold is the similarity above which two records are
// flagged as probable duplicates that slipped past exact key matching.
const nearDuplicateThreshold = 0.9

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	var input string
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a dataset for structural problems and near-duplicates",
		Long: `Validate an artwork dataset.

Checks that ids are sequential starting at 1, titles and artists are
non-empty, categories are known, scores are within 0-10, and no two
records share an identity key. Pairs of records whose artist and title
are nearly identical after normalization are reported as warnings; with
--strict, warnings fail the run too.`,
		Example: `  curator dataset validate --input data/artworks-complete.json

  # Treat near-duplicate warnings as failures
  curator dataset validate --input data/artworks-complete.json --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(input); os.IsNotExist(err) {
				return fmt.Errorf("input file not found: %s", input)
			}
			return executeValidate(input, strict)
		},
	}

	cmd.Flags().StringVar(&input, "input", "data/artworks-complete.json", "Path to the dataset to validate")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat near-duplicate warnings as failures")

	return cmd
}

func executeValidate(input string, strict bool) error {
	loader := dataset.NewLoader(input)
	records, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	fmt.Printf("Validating %d artworks from %s\n", len(records), input)
	fmt.Println(strings.Repeat("=", 70))

	problems := validateRecords(records)
	warnings := nearDuplicateWarnings(records)

	for _, problem := range problems {
		fmt.Printf("✗ %s\n", problem)
	}
	for _, warning := range warnings {
		fmt.Printf("⚠ %s\n", warning)
	}

	fmt.Println(strings.Repeat("-", 70))
	fmt.Printf("%d problems, %d warnings\n", len(problems), len(warnings))

	if len(problems) > 0 {
		return fmt.Errorf("validation failed with %d problems", len(problems))
	}
	if strict && len(warnings) > 0 {
		return fmt.Errorf("validation failed with %d near-duplicate warnings (strict mode)", len(warnings))
	}

	fmt.Println("✓ All validation checks passed")
	return nil
}

// validateRecords returns one message per structural violation, in record
// order so output is stable across runs.
func validateRecords(records []artwork.Record) []string {
	var problems []string
	seen := artwork.NewKeySet(nil)

	for i, record := range records {
		if record.ID != i+1 {
			problems = append(problems, fmt.Sprintf("record %d: expected id %d, got %d", i+1, i+1, record.ID))
		}
		if strings.TrimSpace(record.Title) == "" {
			problems = append(problems, fmt.Sprintf("record %d: empty title", record.ID))
		}
		if strings.TrimSpace(record.Artist) == "" {
			problems = append(problems, fmt.Sprintf("record %d: empty artist", record.ID))
		}
		if !record.Category.Valid() {
			problems = append(problems, fmt.Sprintf("record %d: unknown category %q", record.ID, record.Category))
		}

		key := record.Key()
		if seen.Contains(key) {
			problems = append(problems, fmt.Sprintf("record %d: duplicate identity key %q", record.ID, key))
		}
		seen.Add(key)

		problems = append(problems, scoreProblems(record)...)
	}

	return problems
}

func scoreProblems(record artwork.Record) []string {
	checks := []struct {
		name  string
		value int
	}{
		{"historicalSignificance", record.Scores.HistoricalSignificance},
		{"culturalImpact", record.Scores.CulturalImpact},
		{"technicalInnovation", record.Scores.TechnicalInnovation},
		{"pedagogicalValue", record.Scores.PedagogicalValue},
		{"diversityContribution", record.Scores.DiversityContribution},
	}

	var problems []string
	for _, check := range checks {
		if check.value < 0 || check.value > 10 {
			problems = append(problems, fmt.Sprintf("record %d: %s score %d out of range [0,10]", record.ID, check.name, check.value))
		}
	}
	return problems
}

// nearDuplicateWarnings flags record pairs whose normalized artist+title
// similarity exceeds the threshold. Exact duplicates are caught by key
// checks already; this catches spelling variants like "Klimt"/"Klimpt".
func nearDuplicateWarnings(records []artwork.Record) []string {
	var warnings []string
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			if records[i].Key() == records[j].Key() {
				continue // already reported as a duplicate key problem
			}
			a := records[i].Artist + " " + records[i].Title
			b := records[j].Artist + " " + records[j].Title
			if score := artwork.Similarity(a, b); score > nearDuplicateThreshold {
				warnings = append(warnings, fmt.Sprintf("records %d and %d look alike (%.2f similar): %q / %q",
					records[i].ID, records[j].ID, score, records[i].Title, records[j].Title))
			}
		}
	}
	return warnings
}
