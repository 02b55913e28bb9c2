package generation

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/artatlas/curator/internal/artwork"
	"github.com/artatlas/curator/internal/providers"
)

// fakeProvider replays scripted responses in order, repeating the last
// one, and records every config it was called with.
type fakeProvider struct {
	responses []string
	err       error
	calls     int
	configs   []providers.Config
}

func (f *fakeProvider) Generate(_ context.Context, config providers.Config) (string, error) {
	f.configs = append(f.configs, config)
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	i := f.calls - 1
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	return f.responses[i], nil
}

func batchJSON(t *testing.T, records ...artwork.Record) string {
	t.Helper()
	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("Failed to marshal fixture batch: %v", err)
	}
	return string(data)
}

func rec(title, artist string, category artwork.Category) artwork.Record {
	return artwork.Record{Title: title, Artist: artist, Category: category}
}

func TestTemperatureFor(t *testing.T) {
	tests := []struct {
		batchNum int
		want     float64
	}{
		{batchNum: 0, want: 0.85},
		{batchNum: 1, want: 0.90},
		{batchNum: 2, want: 0.95},
		{batchNum: 3, want: 0.85},
		{batchNum: 7, want: 0.90},
	}

	for _, tt := range tests {
		if got := temperatureFor(tt.batchNum); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Expected temperature %v for batch %d, got %v", tt.want, tt.batchNum, got)
		}
	}
}

func TestGenerateBatchDeduplicates(t *testing.T) {
	nightWatch := rec("The Night Watch", "Rembrandt van Rijn", artwork.CategoryPainting)
	pearl := rec("Girl with a Pearl Earring", "Johannes Vermeer", artwork.CategoryPainting)
	provider := &fakeProvider{responses: []string{batchJSON(t, nightWatch, pearl, pearl)}}
	generator := NewGenerator(provider, "test-model")

	known := artwork.NewKeySet([]artwork.Record{nightWatch})
	unique, parsed, err := generator.GenerateBatch(context.Background(), BatchRequest{
		Category: artwork.CategoryPainting,
		Count:    3,
	}, known)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if parsed != 3 {
		t.Errorf("Expected 3 parsed records, got %d", parsed)
	}
	if len(unique) != 1 {
		t.Fatalf("Expected 1 unique record, got %d", len(unique))
	}
	if unique[0] != pearl {
		t.Errorf("Expected %+v, got %+v", pearl, unique[0])
	}
	if len(known) != 1 {
		t.Errorf("Expected known set to stay unchanged, got %d keys", len(known))
	}
	if known.Contains(pearl.Key()) {
		t.Error("Expected known set to not absorb batch keys")
	}
}

func TestGenerateBatchPropagatesMalformed(t *testing.T) {
	provider := &fakeProvider{responses: []string{"the model rambled instead"}}
	generator := NewGenerator(provider, "test-model")

	_, _, err := generator.GenerateBatch(context.Background(), BatchRequest{
		Category: artwork.CategoryPainting,
		Count:    5,
	}, artwork.NewKeySet(nil))

	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("Expected ErrMalformedResponse, got %v", err)
	}
}

func TestGenerateBatchProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	generator := NewGenerator(provider, "test-model")

	_, _, err := generator.GenerateBatch(context.Background(), BatchRequest{
		Category: artwork.CategorySculpture,
		Count:    5,
	}, artwork.NewKeySet(nil))

	if err == nil {
		t.Fatal("Expected error from failing provider")
	}
	if errors.Is(err, ErrMalformedResponse) {
		t.Errorf("Expected provider failure to not read as malformed response, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Expected wrapped provider error, got %v", err)
	}
}

func TestGenerateBatchConfig(t *testing.T) {
	provider := &fakeProvider{responses: []string{"[]"}}
	generator := NewGenerator(provider, "gemini-pro")

	_, _, err := generator.GenerateBatch(context.Background(), BatchRequest{
		Category: artwork.CategoryArchitecture,
		Count:    8,
		BatchNum: 1,
	}, artwork.NewKeySet(nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(provider.configs) != 1 {
		t.Fatalf("Expected 1 provider call, got %d", len(provider.configs))
	}
	config := provider.configs[0]
	if config.Model != "gemini-pro" {
		t.Errorf("Expected model gemini-pro, got %q", config.Model)
	}
	if math.Abs(config.Temperature-0.90) > 1e-9 {
		t.Errorf("Expected temperature 0.90 for batch 1, got %v", config.Temperature)
	}
	if config.TopP != topP || config.TopK != topK {
		t.Errorf("Expected topP %v and topK %d, got %v and %d", topP, topK, config.TopP, config.TopK)
	}
	if config.MaxOutputTokens != maxOutputTokens {
		t.Errorf("Expected max output tokens %d, got %d", maxOutputTokens, config.MaxOutputTokens)
	}
	if !config.JSONResponse {
		t.Error("Expected JSON response hint to be set")
	}
	if !strings.Contains(config.Prompt, "Generate exactly 8 UNIQUE architectures") {
		t.Error("Expected prompt to carry the requested count")
	}
}
