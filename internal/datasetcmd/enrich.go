package datasetcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/artatlas/curator/internal/artwork"
	"github.com/artatlas/curator/internal/dataset"
	"github.com/artatlas/curator/internal/wikimedia"
)

// enrichDelay spaces out Wikimedia Commons requests. Their API asks bots
// to stay well under a few requests per second.
const enrichDelay = 500 * time.Millisecond

// NewEnrichCmd creates the enrich command
func NewEnrichCmd() *cobra.Command {
	var input string
	var output string
	var limit int

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Fill missing image links from Wikimedia Commons",
		Long: `Enrich dataset records with image links.

For every record without an imageUrl, searches Wikimedia Commons for the
title and artist and stores the first file match. Records that already
have a link are left untouched, so the command is safe to re-run after
interruptions.`,
		Example: `  curator dataset enrich --input data/artworks-complete.json

  # Try the first 25 missing records and write elsewhere
  curator dataset enrich --input data/artworks-complete.json --output data/enriched.json --limit 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(input); os.IsNotExist(err) {
				return fmt.Errorf("input file not found: %s", input)
			}
			if output == "" {
				output = input
			}

			// Create a context that gets canceled on an interrupt signal (Ctrl+C)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeEnrich(ctx, input, output, limit)
		},
	}

	cmd.Flags().StringVar(&input, "input", "data/artworks-complete.json", "Path to the dataset to enrich")
	cmd.Flags().StringVar(&output, "output", "", "Path for the enriched dataset (default: overwrite input)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum records to look up this run (0 for all)")

	return cmd
}

// imageFinder is the part of the Commons client that enrichment needs.
type imageFinder interface {
	FindImageURL(ctx context.Context, title, artist string) (string, error)
}

func executeEnrich(ctx context.Context, input, output string, limit int) error {
	loader := dataset.NewLoader(input)
	doc, err := loader.LoadDocument()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	enriched, skipped, failed := enrichRecords(ctx, wikimedia.New(), doc.Artworks, limit, enrichDelay)

	if err := dataset.Write(output, doc); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	fmt.Printf("Enriched %d artworks (%d already had images, %d not found)\n", enriched, skipped, failed)
	fmt.Printf("Output: %s\n", output)
	return nil
}

// enrichRecords fills missing image links in place, reporting the
// enriched, skipped, and failed counts.
func enrichRecords(ctx context.Context, finder imageFinder, artworks []artwork.Record, limit int, delay time.Duration) (enriched, skipped, failed int) {
	for i := range artworks {
		if ctx.Err() != nil {
			fmt.Println("\nEnrichment interrupted, writing partial results.")
			break
		}

		record := &artworks[i]
		if record.ImageURL != "" {
			skipped++
			continue
		}
		if limit > 0 && enriched+failed >= limit {
			break
		}

		url, err := finder.FindImageURL(ctx, record.Title, record.Artist)

		// The delay follows every lookup, found or not.
		if delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
		}

		if err != nil {
			slog.Warn("Image lookup failed", "title", record.Title, "error", err)
			failed++
			continue
		}
		if url == "" {
			slog.Debug("No image found", "title", record.Title, "artist", record.Artist)
			failed++
			continue
		}

		record.ImageURL = url
		enriched++
		slog.Debug("Image found", "title", record.Title, "url", url)
	}

	return enriched, skipped, failed
}
