package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/artatlas/curator/internal/artwork"
)

const fixtureJSON = `{
  "metadata": {
    "generatedAt": "2024-03-01T12:00:00Z",
    "totalArtworks": 3,
    "model": "gemini-pro",
    "version": "3.0-enhanced",
    "originalCount": 3,
    "additionalGenerated": 0
  },
  "artworks": [
    {
      "id": 1,
      "title": "The Night Watch",
      "artist": "Rembrandt van Rijn",
      "year": 1642,
      "category": "painting",
      "medium": "Oil on canvas",
      "region": "Western Europe",
      "period": "Baroque",
      "scores": {
        "historicalSignificance": 9,
        "culturalImpact": 9,
        "technicalInnovation": 8,
        "pedagogicalValue": 9,
        "diversityContribution": 0
      }
    },
    {
      "id": 2,
      "title": "Moai",
      "artist": "Unknown",
      "year": "c. 1400",
      "category": "sculpture",
      "region": "Oceania",
      "period": "Medieval",
      "scores": {
        "historicalSignificance": 8,
        "culturalImpact": 8,
        "technicalInnovation": 7,
        "pedagogicalValue": 8,
        "diversityContribution": 10
      }
    },
    {
      "id": 3,
      "title": "Parthenon",
      "artist": "Iktinos and Kallikrates",
      "year": -447,
      "category": "architecture",
      "region": "Western Europe",
      "period": "Ancient",
      "scores": {
        "historicalSignificance": 10,
        "culturalImpact": 10,
        "technicalInnovation": 9,
        "pedagogicalValue": 10,
        "diversityContribution": 2
      }
    }
  ]
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artworks.json")
	if err := os.WriteFile(path, []byte(fixtureJSON), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	path := "./data/artworks-deduped.json"
	loader := NewLoader(path)

	if loader.datasetPath != path {
		t.Errorf("Expected path %s, got %s", path, loader.datasetPath)
	}
}

func TestLoadJSON(t *testing.T) {
	loader := NewLoader(writeFixture(t))

	records, err := loader.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	if records[0].Title != "The Night Watch" {
		t.Errorf("Expected title The Night Watch, got %s", records[0].Title)
	}
	if records[0].Year != (artwork.Year{Value: 1642}) {
		t.Errorf("Expected numeric year 1642, got %+v", records[0].Year)
	}
	if records[1].Year != (artwork.Year{Text: "c. 1400", IsText: true}) {
		t.Errorf("Expected textual year, got %+v", records[1].Year)
	}
	if records[2].Category != artwork.CategoryArchitecture {
		t.Errorf("Expected architecture, got %s", records[2].Category)
	}
	if records[0].Scores.HistoricalSignificance != 9 {
		t.Errorf("Expected score 9, got %d", records[0].Scores.HistoricalSignificance)
	}
}

func TestLoadDocumentKeepsMetadata(t *testing.T) {
	loader := NewLoader(writeFixture(t))

	doc, err := loader.LoadDocument()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if doc.Metadata == nil {
		t.Fatal("Expected metadata to be present")
	}
	if doc.Metadata.Model != "gemini-pro" {
		t.Errorf("Expected model gemini-pro, got %s", doc.Metadata.Model)
	}
	if doc.Metadata.Version != "3.0-enhanced" {
		t.Errorf("Expected version 3.0-enhanced, got %s", doc.Metadata.Version)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "missing.json"))

	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artworks.csv")
	if err := os.WriteFile(path, []byte("title,artist\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	loader := NewLoader(path)
	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for unsupported format, got nil")
	}
}

func TestLoadSample(t *testing.T) {
	loader := NewLoader(writeFixture(t))

	records, err := loader.LoadSample(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}

	all, err := loader.LoadSample(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected all 3 records for limit 0, got %d", len(all))
	}
}
