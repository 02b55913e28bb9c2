package providers

import (
	"context"
)

// Config represents one generation request to an LLM provider
type Config struct {
	Model           string
	Prompt          string
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
	// JSONResponse asks the provider to constrain output to a JSON content
	// type where the backend supports it
	JSONResponse bool
}

// Provider defines the interface for an LLM provider
type Provider interface {
	Generate(ctx context.Context, config Config) (string, error)
}
