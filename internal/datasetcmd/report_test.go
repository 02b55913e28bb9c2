package datasetcmd

import (
	"testing"

	"github.com/artatlas/curator/internal/artwork"
)

func TestComputeStats(t *testing.T) {
	first := validRecord(1, "The Night Watch", "Rembrandt")
	first.Region = "Western Europe"
	first.Period = "Baroque"
	first.Movement = "Dutch Golden Age"

	second := validRecord(2, "Guernica", "Pablo Picasso")
	second.Region = "Western Europe"
	second.Scores.HistoricalSignificance = 10

	third := validRecord(3, "David", "Michelangelo")
	third.Category = artwork.CategorySculpture
	third.Region = "Southern Europe"

	stats := computeStats([]artwork.Record{first, second, third})

	if stats.Total != 3 {
		t.Errorf("Expected total 3, got %d", stats.Total)
	}
	if stats.Categories["painting"] != 2 {
		t.Errorf("Expected 2 paintings, got %d", stats.Categories["painting"])
	}
	if stats.Categories["sculpture"] != 1 {
		t.Errorf("Expected 1 sculpture, got %d", stats.Categories["sculpture"])
	}
	if stats.Regions["Western Europe"] != 2 {
		t.Errorf("Expected 2 Western Europe records, got %d", stats.Regions["Western Europe"])
	}
	if stats.Periods["(unspecified)"] != 2 {
		t.Errorf("Expected 2 unspecified periods, got %d", stats.Periods["(unspecified)"])
	}
	if stats.Movements["Dutch Golden Age"] != 1 {
		t.Errorf("Expected 1 Dutch Golden Age record, got %d", stats.Movements["Dutch Golden Age"])
	}

	// validRecord scores 9; one record bumped to 10 -> (9+10+9)/3
	want := (9.0 + 10.0 + 9.0) / 3.0
	got := stats.ScoreAverages["historicalSignificance"]
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected historicalSignificance average %.4f, got %.4f", want, got)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := computeStats(nil)

	if stats.Total != 0 {
		t.Errorf("Expected total 0, got %d", stats.Total)
	}
	if len(stats.ScoreAverages) != 0 {
		t.Errorf("Expected no score averages for empty dataset, got %v", stats.ScoreAverages)
	}
}

func TestBucket(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain value", "East Asia", "East Asia"},
		{"empty", "", "(unspecified)"},
		{"whitespace only", "   ", "(unspecified)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bucket(tt.input); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
