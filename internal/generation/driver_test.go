package generation

import (
	"context"
	"testing"
	"time"

	"github.com/artatlas/curator/internal/artwork"
)

func TestTargetsGaps(t *testing.T) {
	targets := Targets{
		artwork.CategoryPainting:     200,
		artwork.CategorySculpture:    64,
		artwork.CategoryArchitecture: 64,
	}
	existing := append(paintings(180),
		rec("David", "Michelangelo", artwork.CategorySculpture),
	)
	for i := 0; i < 70; i++ {
		existing = append(existing, artwork.Record{
			Title:    "Temple",
			Artist:   "Unknown",
			Category: artwork.CategoryArchitecture,
		})
	}

	gaps := targets.Gaps(existing)

	if gaps[artwork.CategoryPainting] != 20 {
		t.Errorf("Expected painting gap 20, got %d", gaps[artwork.CategoryPainting])
	}
	if gaps[artwork.CategorySculpture] != 63 {
		t.Errorf("Expected sculpture gap 63, got %d", gaps[artwork.CategorySculpture])
	}
	if gaps[artwork.CategoryArchitecture] != 0 {
		t.Errorf("Expected architecture gap to clamp at 0, got %d", gaps[artwork.CategoryArchitecture])
	}
}

func TestDefaultTargets(t *testing.T) {
	targets := DefaultTargets()

	if targets[artwork.CategoryPainting] != 200 {
		t.Errorf("Expected 200 paintings, got %d", targets[artwork.CategoryPainting])
	}
	if targets[artwork.CategorySculpture] != 64 {
		t.Errorf("Expected 64 sculptures, got %d", targets[artwork.CategorySculpture])
	}
	if targets[artwork.CategoryArchitecture] != 64 {
		t.Errorf("Expected 64 architecture works, got %d", targets[artwork.CategoryArchitecture])
	}
}

func TestDriverRun(t *testing.T) {
	existing := []artwork.Record{
		{ID: 7, Title: "The Night Watch", Artist: "Rembrandt van Rijn", Category: artwork.CategoryPainting},
		{ID: 9, Title: "The Milkmaid", Artist: "Johannes Vermeer", Category: artwork.CategoryPainting},
	}
	newPainting := rec("The Great Wave off Kanagawa", "Katsushika Hokusai", artwork.CategoryPainting)
	newSculpture := rec("The Thinker", "Auguste Rodin", artwork.CategorySculpture)
	provider := &fakeProvider{responses: []string{
		batchJSON(t, newPainting),
		batchJSON(t, newSculpture),
	}}
	driver := &Driver{
		Filler: newTestFiller(provider, 10),
		Targets: Targets{
			artwork.CategoryPainting:     3,
			artwork.CategorySculpture:    1,
			artwork.CategoryArchitecture: 0,
		},
		Provider: "gemini",
		Model:    "gemini-pro",
	}

	doc, results := driver.Run(context.Background(), existing)

	if len(results) != 2 {
		t.Fatalf("Expected 2 fill results, got %d", len(results))
	}
	if results[0].Category != artwork.CategoryPainting || results[1].Category != artwork.CategorySculpture {
		t.Errorf("Expected painting then sculpture, got %s then %s", results[0].Category, results[1].Category)
	}

	if len(doc.Artworks) != 4 {
		t.Fatalf("Expected 4 merged records, got %d", len(doc.Artworks))
	}
	for i, record := range doc.Artworks {
		if record.ID != i+1 {
			t.Errorf("Expected id %d at position %d, got %d", i+1, i, record.ID)
		}
	}
	if doc.Artworks[0].Title != "The Night Watch" || doc.Artworks[2].Title != newPainting.Title {
		t.Error("Expected existing records first, then generated records in category order")
	}

	meta := doc.Metadata
	if meta == nil {
		t.Fatal("Expected document metadata")
	}
	if meta.RunID == "" {
		t.Error("Expected a run id")
	}
	if _, err := time.Parse(time.RFC3339, meta.GeneratedAt); err != nil {
		t.Errorf("Expected RFC3339 timestamp, got %q: %v", meta.GeneratedAt, err)
	}
	if meta.TotalArtworks != 4 || meta.OriginalCount != 2 || meta.AdditionalGenerated != 2 {
		t.Errorf("Expected counts 4/2/2, got %d/%d/%d", meta.TotalArtworks, meta.OriginalCount, meta.AdditionalGenerated)
	}
	if meta.Provider != "gemini" || meta.Model != "gemini-pro" {
		t.Errorf("Expected provider metadata, got %q %q", meta.Provider, meta.Model)
	}
	if meta.Version != DatasetVersion {
		t.Errorf("Expected version %q, got %q", DatasetVersion, meta.Version)
	}
	if len(meta.Enhancements) == 0 {
		t.Error("Expected enhancement notes")
	}
}

func TestDriverCrossCategoryDeduplication(t *testing.T) {
	// The sculpture batch repeats the freshly generated painting's
	// identity key, so only its second record may survive.
	collision := rec("Untitled", "Anonymous Master", artwork.CategoryPainting)
	sculptureTwin := rec("Untitled", "Anonymous Master", artwork.CategorySculpture)
	keeper := rec("Bird in Space", "Constantin Brancusi", artwork.CategorySculpture)
	provider := &fakeProvider{responses: []string{
		batchJSON(t, collision),
		batchJSON(t, sculptureTwin, keeper),
	}}
	driver := &Driver{
		Filler: newTestFiller(provider, 10),
		Targets: Targets{
			artwork.CategoryPainting:  1,
			artwork.CategorySculpture: 1,
		},
	}

	doc, results := driver.Run(context.Background(), nil)

	if len(doc.Artworks) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(doc.Artworks))
	}
	if doc.Artworks[1].Title != "Bird in Space" {
		t.Errorf("Expected the colliding sculpture to be dropped, got %+v", doc.Artworks[1])
	}
	if results[1].Duplicates != 1 {
		t.Errorf("Expected 1 cross-category duplicate, got %d", results[1].Duplicates)
	}

	seen := artwork.NewKeySet(nil)
	for _, record := range doc.Artworks {
		if seen.Contains(record.Key()) {
			t.Errorf("Expected unique identity keys, got %q twice", record.Key())
		}
		seen.Add(record.Key())
	}
}

func TestDriverSkipsSatisfiedCategories(t *testing.T) {
	existing := []artwork.Record{
		rec("The Night Watch", "Rembrandt van Rijn", artwork.CategoryPainting),
	}
	provider := &fakeProvider{}
	driver := &Driver{
		Filler:  newTestFiller(provider, 10),
		Targets: Targets{artwork.CategoryPainting: 1},
	}

	doc, results := driver.Run(context.Background(), existing)

	if provider.calls != 0 {
		t.Errorf("Expected no provider calls, got %d", provider.calls)
	}
	if len(results) != 0 {
		t.Errorf("Expected no fill results, got %d", len(results))
	}
	if len(doc.Artworks) != 1 || doc.Artworks[0].ID != 1 {
		t.Errorf("Expected existing record renumbered to id 1, got %+v", doc.Artworks)
	}
	if doc.Metadata.AdditionalGenerated != 0 {
		t.Errorf("Expected no generated records, got %d", doc.Metadata.AdditionalGenerated)
	}
}
