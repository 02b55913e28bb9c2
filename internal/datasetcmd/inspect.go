package datasetcmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/artatlas/curator/internal/artwork"
	"github.com/artatlas/curator/internal/dataset"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var input string
	var limit int
	var category string
	var showScores bool
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect dataset records one by one",
		Long: `Inspect records from a json or parquet dataset file.

Useful for eyeballing what a generation run actually produced: titles,
attributions, periods, and the selection rationale the model gave.`,
		Example: `  # Page through the first 10 records
  curator dataset inspect --input data/artworks-complete.json

  # Step through sculptures one at a time with scores
  curator dataset inspect --input data/artworks-complete.json --category sculpture --scores --interactive

  # Inspect all records (no limit)
  curator dataset inspect --input data/artworks-complete.json --limit 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(input); os.IsNotExist(err) {
				return fmt.Errorf("input file not found: %s", input)
			}
			if category != "" && !artwork.Category(category).Valid() {
				return fmt.Errorf("unknown category: %s (valid: painting, sculpture, architecture)", category)
			}

			// Create a context that gets canceled on an interrupt signal (Ctrl+C)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeInspect(ctx, input, limit, artwork.Category(category), showScores, interactive)
		},
	}

	cmd.Flags().StringVar(&input, "input", "data/artworks-complete.json", "Path to json or parquet dataset file")
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of records to inspect (0 for all)")
	cmd.Flags().StringVar(&category, "category", "", "Only show records in this category")
	cmd.Flags().BoolVar(&showScores, "scores", false, "Show curatorial scores")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Pause after each record (press Enter to continue)")

	return cmd
}

func executeInspect(ctx context.Context, input string, limit int, category artwork.Category, showScores, interactive bool) error {
	records, err := loadInspectRecords(input, limit, category)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	fmt.Printf("Loaded %d records from %s\n", len(records), input)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for i, record := range records {
		// Check for context cancellation (e.g., Ctrl+C) at the start of each iteration
		select {
		case <-ctx.Done():
			fmt.Println("\nInspection interrupted.")
			return nil
		default:
		}

		fmt.Printf("RECORD %d/%d\n", i+1, len(records))
		fmt.Println(strings.Repeat("-", 80))

		fmt.Printf("ID:        %d\n", record.ID)
		fmt.Printf("Title:     %s\n", record.Title)
		fmt.Printf("Artist:    %s\n", record.Artist)
		fmt.Printf("Year:      %s\n", record.Year.String())
		fmt.Printf("Category:  %s\n", record.Category)
		if record.Medium != "" {
			fmt.Printf("Medium:    %s\n", record.Medium)
		}
		if record.Location != "" {
			fmt.Printf("Location:  %s\n", record.Location)
		}
		if record.Region != "" {
			fmt.Printf("Region:    %s\n", record.Region)
		}
		if record.Period != "" {
			fmt.Printf("Period:    %s\n", record.Period)
		}
		if record.Movement != "" {
			fmt.Printf("Movement:  %s\n", record.Movement)
		}
		if record.ImageURL != "" {
			fmt.Printf("Image:     %s\n", record.ImageURL)
		}

		if showScores {
			fmt.Println("Scores:")
			fmt.Printf("  Historical significance: %d\n", record.Scores.HistoricalSignificance)
			fmt.Printf("  Cultural impact:         %d\n", record.Scores.CulturalImpact)
			fmt.Printf("  Technical innovation:    %d\n", record.Scores.TechnicalInnovation)
			fmt.Printf("  Pedagogical value:       %d\n", record.Scores.PedagogicalValue)
			fmt.Printf("  Diversity contribution:  %d\n", record.Scores.DiversityContribution)
		}

		if record.SelectionRationale != "" {
			fmt.Printf("Rationale: %s\n", record.SelectionRationale)
		}

		fmt.Println()

		if interactive {
			fmt.Print("Press Enter to continue to next record (or Ctrl+C to quit)...")

			// Channel to signal user input
			inputCh := make(chan struct{})
			go func() {
				_, _ = reader.ReadString('\n')
				close(inputCh)
			}()

			// Wait for either user input (Enter) or context cancellation (Ctrl+C)
			select {
			case <-ctx.Done():
				fmt.Println("\nInspection interrupted.")
				return nil
			case <-inputCh:
				fmt.Println()
			}
		}
	}

	return nil
}

// loadInspectRecords loads the records to display. The category filter,
// when set, applies before the limit.
func loadInspectRecords(input string, limit int, category artwork.Category) ([]artwork.Record, error) {
	loader := dataset.NewLoader(input)
	if category == "" {
		return loader.LoadSample(limit)
	}

	records, err := loader.Load()
	if err != nil {
		return nil, err
	}

	filtered := make([]artwork.Record, 0, len(records))
	for _, record := range records {
		if record.Category == category {
			filtered = append(filtered, record)
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}
