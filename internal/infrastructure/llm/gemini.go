package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"BiasDetector/internal/config"
	"BiasDetector/internal/ports"
)

// GeminiBackend implements ports.ModelBackend against the Gemini API.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

var _ ports.ModelBackend = (*GeminiBackend)(nil)

// NewGeminiBackend builds a backend from configuration. A missing API key is
// a configuration error: the caller must not attempt a run without it.
func NewGeminiBackend(ctx context.Context, cfg config.GeminiConfig) (*GeminiBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiBackend{client: client, model: model}, nil
}

// Generate performs one content generation, requesting a strict JSON-object
// response when jsonOutput is set. The backend guarantees no schema; callers
// parse defensively.
func (b *GeminiBackend) Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	var cfg *genai.GenerateContentConfig
	if jsonOutput {
		cfg = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		}
	}

	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}
