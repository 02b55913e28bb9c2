package datasetcmd

import "testing"

func TestCheckCredentials(t *testing.T) {
	t.Run("gemini missing key", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		if err := checkCredentials("gemini"); err == nil {
			t.Error("Expected error for missing GEMINI_API_KEY")
		}
	})

	t.Run("gemini placeholder key", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", placeholderAPIKey)
		if err := checkCredentials("gemini"); err == nil {
			t.Error("Expected error for placeholder GEMINI_API_KEY")
		}
	})

	t.Run("gemini key set", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		if err := checkCredentials("gemini"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("openai missing key", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		if err := checkCredentials("openai"); err == nil {
			t.Error("Expected error for missing OPENAI_API_KEY")
		}
	})

	t.Run("openai key set", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "test-key")
		if err := checkCredentials("openai"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("ollama needs no key", func(t *testing.T) {
		if err := checkCredentials("ollama"); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})
}
