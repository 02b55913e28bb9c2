package generation

import (
	"fmt"
	"os"

	"github.com/artatlas/curator/internal/gemini"
	"github.com/artatlas/curator/internal/ollama"
	"github.com/artatlas/curator/internal/openai"
	"github.com/artatlas/curator/internal/providers"
)

// ResolveProvider maps a provider name to its implementation.
func ResolveProvider(name string) (providers.Provider, error) {
	switch name {
	case "gemini":
		return gemini.New(), nil
	case "ollama":
		return ollama.New(), nil
	case "openai":
		return openai.New(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
}

// DefaultModel returns the model used when none was requested.
func DefaultModel(provider string) string {
	switch provider {
	case "openai":
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			return "gpt-4o"
		}
		return model
	case "ollama":
		model := os.Getenv("OLLAMA_MODEL")
		if model == "" {
			return "mistral-small3.2:24b"
		}
		return model
	default:
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			return "gemini-pro"
		}
		return model
	}
}
