package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the Gemini model used when none is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider implements Provider for the Google Gemini API
type GeminiProvider struct {
	config *Config
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider. The API client is
// created lazily on the first request because client construction needs
// a context.
func NewGeminiProvider(config *Config) *GeminiProvider {
	return &GeminiProvider{config: config}
}

// Complete sends the prompt to Gemini and returns the generated text
func (p *GeminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	if err := p.IsAvailable(); err != nil {
		return "", err
	}

	if p.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  p.config.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create Gemini client: %w", err)
		}
		p.client = client
	}

	model := req.Model
	if model == "" {
		model = p.config.Model
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := p.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no response returned")
	}

	return text, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is properly configured
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not found. Set GEMINI_API_KEY environment variable or configure in .codeshift.yaml")
	}
	return nil
}
