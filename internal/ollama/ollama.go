package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/artatlas/curator/internal/providers"
)

// Ollama is a provider for Ollama
type Ollama struct{}

// New returns a new Ollama provider
func New() *Ollama {
	return &Ollama{}
}

// Generate produces text for the given prompt using Ollama
func (o *Ollama) Generate(ctx context.Context, config providers.Config) (string, error) {
	ollamaURL := os.Getenv("OLLAMA_URL")
	if ollamaURL == "" {
		ollamaURL = "http://localhost:11434"
	}
	url := ollamaURL + "/api/generate"

	options := map[string]interface{}{
		"temperature": config.Temperature,
	}
	if config.TopP > 0 {
		options["top_p"] = config.TopP
	}
	if config.TopK > 0 {
		options["top_k"] = config.TopK
	}
	if config.MaxOutputTokens > 0 {
		options["num_predict"] = config.MaxOutputTokens
	}

	body := map[string]interface{}{
		"model":   config.Model,
		"prompt":  config.Prompt,
		"stream":  false,
		"options": options,
	}
	if config.JSONResponse {
		body["format"] = "json"
	}

	requestBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	return response.Response, nil
}
