// Package provider abstracts the hosted model APIs codeshift can send
// conversion prompts to. Each vendor gets its own Provider implementation;
// callers only see prompt in, generated text out.
package provider

import (
	"context"
	"fmt"
	"time"
)

// Request is a single completion request to a hosted model.
type Request struct {
	Prompt      string
	Model       string  // empty means the provider default
	Temperature float32 // near-deterministic decoding wanted for code
	MaxTokens   int     // 0 means the provider default
}

// Provider defines the interface for hosted model backends
type Provider interface {
	// Complete sends the prompt and returns the generated text
	Complete(ctx context.Context, req Request) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for model providers
type Config struct {
	Provider    string // Provider name: "openai" or "gemini"
	Model       string // Model identifier, empty for the provider default
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration // Per-request timeout

	// Credentials
	OpenAIKey string
	GeminiKey string
}

// DefaultConfig returns default provider configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "openai",
		Temperature: 0.2,
		MaxTokens:   4096,
		Timeout:     60 * time.Second,
	}
}

// NewProvider creates the appropriate model provider based on configuration.
// The returned provider is wrapped in a circuit breaker so a flapping API
// fails fast instead of hanging every conversion.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var p Provider
	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		p = NewOpenAIProvider(config)

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		p = NewGeminiProvider(config)

	default:
		return nil, fmt.Errorf("unknown model provider: %s", config.Provider)
	}

	return WithBreaker(p), nil
}
