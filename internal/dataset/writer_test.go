package dataset

import (
	"path/filepath"
	"testing"

	"github.com/artatlas/curator/internal/artwork"
)

func sampleRecords() []artwork.Record {
	return []artwork.Record{
		{
			ID:       1,
			Title:    "The Night Watch",
			Artist:   "Rembrandt van Rijn",
			Year:     artwork.Year{Value: 1642},
			Category: artwork.CategoryPainting,
			Medium:   "Oil on canvas",
			Region:   "Western Europe",
			Period:   "Baroque",
			Movement: "Dutch Golden Age",
			Scores: artwork.Scores{
				HistoricalSignificance: 9,
				CulturalImpact:         9,
				TechnicalInnovation:    8,
				PedagogicalValue:       9,
				DiversityContribution:  0,
			},
			SelectionRationale: "Defining work of the Dutch Golden Age.",
		},
		{
			ID:       2,
			Title:    "Moai",
			Artist:   "Unknown",
			Year:     artwork.Year{Text: "c. 1400", IsText: true},
			Category: artwork.CategorySculpture,
			Region:   "Oceania",
			Period:   "Medieval",
			Scores: artwork.Scores{
				HistoricalSignificance: 8,
				CulturalImpact:         8,
				TechnicalInnovation:    7,
				PedagogicalValue:       8,
				DiversityContribution:  10,
			},
		},
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "artworks.json")

	doc := &Document{
		Metadata: &Metadata{
			GeneratedAt:   "2024-03-01T12:00:00Z",
			TotalArtworks: 2,
			Model:         "gemini-pro",
			Version:       "3.1",
			OriginalCount: 2,
		},
		Artworks: sampleRecords(),
	}

	if err := Write(path, doc); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	loaded, err := NewLoader(path).LoadDocument()
	if err != nil {
		t.Fatalf("Failed to load written file: %v", err)
	}
	if len(loaded.Artworks) != 2 {
		t.Errorf("Expected 2 records, got %d", len(loaded.Artworks))
	}
	if loaded.Metadata == nil || loaded.Metadata.Version != "3.1" {
		t.Errorf("Expected metadata version 3.1, got %+v", loaded.Metadata)
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artworks.json")
	records := sampleRecords()

	if err := Write(path, &Document{Artworks: records}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	loaded, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Failed to load written file: %v", err)
	}

	if len(loaded) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(loaded))
	}
	for i := range records {
		if loaded[i] != records[i] {
			t.Errorf("Record %d changed in round trip:\nexpected %+v\ngot      %+v", i, records[i], loaded[i])
		}
	}
}

func TestParquetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artworks.parquet")
	records := sampleRecords()

	if err := WriteParquet(path, records); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	loaded, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Failed to load parquet file: %v", err)
	}

	if len(loaded) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(loaded))
	}
	for i := range records {
		if loaded[i] != records[i] {
			t.Errorf("Record %d changed in round trip:\nexpected %+v\ngot      %+v", i, records[i], loaded[i])
		}
	}
}
