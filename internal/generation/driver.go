package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/artatlas/curator/internal/artwork"
	"github.com/artatlas/curator/internal/dataset"
)

// DatasetVersion tags the metadata of documents written by this pipeline.
const DatasetVersion = "3.1"

// Targets holds the desired per-category record counts.
type Targets map[artwork.Category]int

// DefaultTargets matches the published dataset composition.
func DefaultTargets() Targets {
	return Targets{
		artwork.CategoryPainting:     200,
		artwork.CategorySculpture:    64,
		artwork.CategoryArchitecture: 64,
	}
}

// Gaps returns how many records each category is short of its target.
func (t Targets) Gaps(existing []artwork.Record) map[artwork.Category]int {
	counts := artwork.CountByCategory(existing)
	gaps := make(map[artwork.Category]int, len(t))
	for category, desired := range t {
		gaps[category] = max(0, desired-counts[category])
	}
	return gaps
}

// Driver fills every category and assembles the final document.
type Driver struct {
	Filler   *Filler
	Targets  Targets
	Provider string
	Model    string
}

// Run fills each category in a fixed order and merges the results into a
// renumbered document. Records accumulated for earlier categories join
// the known context for later ones, so no duplicate identity keys
// survive the merge. Existing records keep their order and come first;
// ids are reassigned 1..N across the merged sequence.
func (d *Driver) Run(ctx context.Context, existing []artwork.Record) (*dataset.Document, []FillResult) {
	gaps := d.Targets.Gaps(existing)
	results := make([]FillResult, 0, len(artwork.Categories()))
	var generated []artwork.Record

	for _, category := range artwork.Categories() {
		gap := gaps[category]
		if gap == 0 {
			slog.Info("Category already complete", "category", category)
			continue
		}

		known := make([]artwork.Record, 0, len(existing)+len(generated))
		known = append(known, existing...)
		known = append(known, generated...)

		result := d.Filler.Fill(ctx, category, gap, known)
		results = append(results, result)
		generated = append(generated, result.Records...)
	}

	merged := make([]artwork.Record, 0, len(existing)+len(generated))
	merged = append(merged, existing...)
	merged = append(merged, generated...)
	for i := range merged {
		merged[i].ID = i + 1
	}

	doc := &dataset.Document{
		Metadata: &dataset.Metadata{
			RunID:               uuid.NewString(),
			GeneratedAt:         time.Now().UTC().Format(time.RFC3339),
			TotalArtworks:       len(merged),
			Provider:            d.Provider,
			Model:               d.Model,
			Version:             DatasetVersion,
			OriginalCount:       len(existing),
			AdditionalGenerated: len(generated),
			Enhancements:        d.enhancementNotes(),
		},
		Artworks: merged,
	}
	return doc, results
}

func (d *Driver) enhancementNotes() []string {
	return []string{
		"Smart deduplication with rotating exclusion lists",
		"Region/period gap analysis",
		"Category-specific suggestions per batch",
		"Temperature variation (0.85-0.95)",
		fmt.Sprintf("Batch size: %d artworks", d.Filler.BatchSize()),
	}
}
