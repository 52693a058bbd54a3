package factory

import (
	"context"
	"fmt"

	"plantcare-be/pkg/llm"
	"plantcare-be/pkg/llm/gemini"
	"plantcare-be/pkg/llm/huggingface"
	"plantcare-be/pkg/llm/ollama"
)

type Settings struct {
	Provider           string
	Model              string
	APIKey             string
	OllamaBaseURL      string
	HuggingFaceKey     string
	HuggingFaceBaseURL string
}

// NewLLMProvider returns llm.ErrNotConfigured (wrapped) when the selected
// provider lacks credentials.
func NewLLMProvider(ctx context.Context, s Settings) (llm.LLMProvider, error) {
	switch s.Provider {
	case "gemini", "":
		p, err := gemini.NewGeminiProvider(ctx, s.APIKey, s.Model)
		if err != nil {
			return nil, fmt.Errorf("gemini provider: %w", err)
		}
		return p, nil
	case "ollama":
		baseURL := s.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, s.Model), nil
	case "huggingface":
		p, err := huggingface.NewHuggingFaceProvider(s.HuggingFaceKey, s.HuggingFaceBaseURL, s.Model)
		if err != nil {
			return nil, fmt.Errorf("huggingface provider: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}
