package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/artatlas/curator/internal/artwork"
	"github.com/artatlas/curator/internal/providers"
)

const (
	baseTemperature = 0.85
	temperatureStep = 0.05
	maxOutputTokens = 8192
	topP            = 0.95
	topK            = 64
)

// BatchRequest describes one generation call. Known carries the full
// record context (existing plus accumulated so far) used to build the
// exclusion list in the prompt.
type BatchRequest struct {
	Category artwork.Category
	Count    int
	BatchNum int
	Known    []artwork.Record
}

// Generator turns batch requests into parsed, deduplicated records.
type Generator struct {
	provider providers.Provider
	model    string
}

// NewGenerator returns a Generator backed by the given provider and model.
func NewGenerator(provider providers.Provider, model string) *Generator {
	return &Generator{provider: provider, model: model}
}

// temperatureFor cycles 0.85, 0.90, 0.95 so consecutive batches sample
// differently.
func temperatureFor(batchNum int) float64 {
	return baseTemperature + float64(batchNum%3)*temperatureStep
}

// GenerateBatch requests req.Count records from the provider, sanitizes
// and parses the response, and drops every record whose identity key is
// already in known. The known set is read-only input; within-batch
// duplicates collapse to the first occurrence. It returns the unique
// records plus the total parsed count for yield accounting.
func (g *Generator) GenerateBatch(ctx context.Context, req BatchRequest, known artwork.KeySet) ([]artwork.Record, int, error) {
	slog.Debug("Requesting batch",
		"category", req.Category,
		"count", req.Count,
		"batch", req.BatchNum+1,
		"known", len(req.Known))

	raw, err := g.provider.Generate(ctx, providers.Config{
		Model:           g.model,
		Prompt:          BuildPrompt(req.Category, req.Count, req.Known, req.BatchNum),
		Temperature:     temperatureFor(req.BatchNum),
		TopP:            topP,
		TopK:            topK,
		MaxOutputTokens: maxOutputTokens,
		JSONResponse:    true,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to generate batch: %w", err)
	}

	records, err := ParseRecords(CleanResponse(raw))
	if err != nil {
		return nil, 0, err
	}

	seen := known.Clone()
	unique := make([]artwork.Record, 0, len(records))
	for _, record := range records {
		key := record.Key()
		if seen.Contains(key) {
			slog.Debug("Skipping duplicate", "title", record.Title, "artist", record.Artist)
			continue
		}
		seen.Add(key)
		unique = append(unique, record)
	}

	return unique, len(records), nil
}
