package provider

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Provider != "openai" {
		t.Errorf("Expected default provider 'openai', got '%s'", config.Provider)
	}
	if config.Temperature != 0.2 {
		t.Errorf("Expected default temperature 0.2, got %v", config.Temperature)
	}
	if config.Timeout != 60*time.Second {
		t.Errorf("Expected default timeout 60s, got %v", config.Timeout)
	}
}

func TestNewProvider_MissingKeys(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{"openai without key", &Config{Provider: "openai"}},
		{"gemini without key", &Config{Provider: "gemini"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProvider(tt.config); err == nil {
				t.Error("Expected error for missing API key")
			}
		})
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(&Config{Provider: "skynet"})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
	if err.Error() != "unknown model provider: skynet" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestNewProvider_WrapsBreaker(t *testing.T) {
	p, err := NewProvider(&Config{Provider: "openai", OpenAIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}

	if _, ok := p.(*BreakerProvider); !ok {
		t.Errorf("Expected provider wrapped in BreakerProvider, got %T", p)
	}
	if p.Name() != "openai" {
		t.Errorf("Expected name 'openai', got '%s'", p.Name())
	}
}

func TestOpenAIProvider_NoKey(t *testing.T) {
	p := NewOpenAIProvider(&Config{})

	_, err := p.Complete(context.Background(), Request{Prompt: "hello"})
	if err == nil {
		t.Error("Expected error for missing API key")
	}
}

func TestGeminiProvider_NoKey(t *testing.T) {
	p := NewGeminiProvider(&Config{})

	_, err := p.Complete(context.Background(), Request{Prompt: "hello"})
	if err == nil {
		t.Error("Expected error for missing API key")
	}
}

func TestOpenAIProvider_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	p := NewOpenAIProvider(&Config{OpenAIKey: apiKey})

	out, err := p.Complete(context.Background(), Request{
		Prompt:      "Reply with the single word: pong",
		Temperature: 0,
		MaxTokens:   10,
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if out == "" {
		t.Error("Got empty completion")
	}

	t.Logf("Completion: %s", out)
}

// failingProvider always errors, for breaker tests
type failingProvider struct {
	calls int
}

func (f *failingProvider) Complete(ctx context.Context, req Request) (string, error) {
	f.calls++
	return "", errors.New("boom")
}

func (f *failingProvider) Name() string { return "failing" }

func (f *failingProvider) IsAvailable() error { return nil }

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &failingProvider{}
	p := WithBreaker(inner)

	for i := 0; i < 3; i++ {
		if _, err := p.Complete(context.Background(), Request{Prompt: "x"}); err == nil {
			t.Fatal("Expected failure from inner provider")
		}
	}

	callsBefore := inner.calls

	// Breaker should now be open and reject without calling the inner provider
	if _, err := p.Complete(context.Background(), Request{Prompt: "x"}); err == nil {
		t.Fatal("Expected breaker-open error")
	}
	if inner.calls != callsBefore {
		t.Errorf("Inner provider called while breaker open (%d -> %d calls)", callsBefore, inner.calls)
	}
}
