package datasetcmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artatlas/curator/internal/artwork"
	"github.com/artatlas/curator/internal/dataset"
)

// NewReportCmd creates the report command
func NewReportCmd() *cobra.Command {
	var input string
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize dataset composition and score averages",
		Long: `Report on an artwork dataset.

Prints category, region, period, and movement distributions together with
the average of each curatorial score. The json and csv formats are meant
for piping into other tools.`,
		Example: `  curator dataset report --input data/artworks-complete.json

  # Machine-readable output
  curator dataset report --input data/artworks-complete.json --format json
  curator dataset report --input data/artworks-complete.json --format csv > stats.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(input); os.IsNotExist(err) {
				return fmt.Errorf("input file not found: %s", input)
			}
			return executeReport(input, format)
		},
	}

	cmd.Flags().StringVar(&input, "input", "data/artworks-complete.json", "Path to the dataset to report on")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, or csv")

	return cmd
}

func executeReport(input, format string) error {
	loader := dataset.NewLoader(input)
	records, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	stats := computeStats(records)

	switch format {
	case "text":
		return printTextReport(stats)
	case "json":
		return printJSONReport(stats)
	case "csv":
		return printCSVReport(stats)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// datasetStats is the aggregate view one report run produces. Empty region,
// period, and movement values are tallied under "(unspecified)" so each
// distribution sums to Total.
type datasetStats struct {
	Total         int                `json:"total"`
	Categories    map[string]int     `json:"categories"`
	Regions       map[string]int     `json:"regions"`
	Periods       map[string]int     `json:"periods"`
	Movements     map[string]int     `json:"movements"`
	ScoreAverages map[string]float64 `json:"scoreAverages"`
}

func computeStats(records []artwork.Record) *datasetStats {
	stats := &datasetStats{
		Total:         len(records),
		Categories:    make(map[string]int),
		Regions:       make(map[string]int),
		Periods:       make(map[string]int),
		Movements:     make(map[string]int),
		ScoreAverages: make(map[string]float64),
	}

	sums := make(map[string]int)
	for _, record := range records {
		stats.Categories[string(record.Category)]++
		stats.Regions[bucket(record.Region)]++
		stats.Periods[bucket(record.Period)]++
		stats.Movements[bucket(record.Movement)]++

		sums["historicalSignificance"] += record.Scores.HistoricalSignificance
		sums["culturalImpact"] += record.Scores.CulturalImpact
		sums["technicalInnovation"] += record.Scores.TechnicalInnovation
		sums["pedagogicalValue"] += record.Scores.PedagogicalValue
		sums["diversityContribution"] += record.Scores.DiversityContribution
	}

	if len(records) > 0 {
		for name, sum := range sums {
			stats.ScoreAverages[name] = float64(sum) / float64(len(records))
		}
	}

	return stats
}

func bucket(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(unspecified)"
	}
	return value
}

func printTextReport(stats *datasetStats) error {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("Artwork Dataset Report")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Total artworks: %d\n", stats.Total)

	printDistribution("By category", stats.Categories, stats.Total)
	printDistribution("By region", stats.Regions, stats.Total)
	printDistribution("By period", stats.Periods, stats.Total)
	printDistribution("By movement", stats.Movements, stats.Total)

	fmt.Println("\nScore averages:")
	for _, name := range sortedKeys(stats.ScoreAverages) {
		fmt.Printf("  %-26s %.2f\n", name+":", stats.ScoreAverages[name])
	}

	return nil
}

func printDistribution(title string, counts map[string]int, total int) {
	fmt.Printf("\n%s:\n", title)
	for _, name := range sortedKeys(counts) {
		count := counts[name]
		percent := 0.0
		if total > 0 {
			percent = float64(count) / float64(total) * 100
		}
		fmt.Printf("  %-30s %4d (%.1f%%)\n", name, count, percent)
	}
}

func printJSONReport(stats *datasetStats) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(stats)
}

func printCSVReport(stats *datasetStats) error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	if err := writer.Write([]string{"section", "name", "value"}); err != nil {
		return err
	}

	sections := []struct {
		name   string
		counts map[string]int
	}{
		{"category", stats.Categories},
		{"region", stats.Regions},
		{"period", stats.Periods},
		{"movement", stats.Movements},
	}

	for _, section := range sections {
		for _, name := range sortedKeys(section.counts) {
			row := []string{section.name, name, strconv.Itoa(section.counts[name])}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	for _, name := range sortedKeys(stats.ScoreAverages) {
		row := []string{"scoreAverage", name, fmt.Sprintf("%.2f", stats.ScoreAverages[name])}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
