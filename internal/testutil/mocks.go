package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/codeshift/internal/provider"
)

// MockProvider mocks a model provider. Responses are keyed by prompt;
// when no key matches, Response (or a default) is returned.
type MockProvider struct {
	Response  string
	Responses map[string]string
	Err       error

	mu    sync.Mutex
	calls []provider.Request
}

// Complete records the request and returns the configured response
func (m *MockProvider) Complete(ctx context.Context, req provider.Request) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	if resp, ok := m.Responses[req.Prompt]; ok {
		return resp, nil
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return "mock converted code", nil
}

// Name returns the provider name
func (m *MockProvider) Name() string { return "mock" }

// IsAvailable always reports the mock as configured
func (m *MockProvider) IsAvailable() error { return nil }

// Calls returns a copy of the recorded requests
func (m *MockProvider) Calls() []provider.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]provider.Request{}, m.calls...)
}

// CallCount returns how many times Complete was invoked
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// MockClipboard mocks the platform clipboard
type MockClipboard struct {
	Err error

	mu       sync.Mutex
	contents []string
}

// SetContent records the written text or returns the configured error
func (m *MockClipboard) SetContent(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents = append(m.contents, text)
	return nil
}

// Contents returns everything written to the clipboard
func (m *MockClipboard) Contents() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.contents...)
}

// MockRecorder mocks the conversion history recorder
type MockRecorder struct {
	Err error

	mu      sync.Mutex
	entries []string
}

// RecordConversion records a compact description of the conversion
func (m *MockRecorder) RecordConversion(sourceLang, targetLang, sourceText, resultText, model string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, fmt.Sprintf("%s->%s (%s)", sourceLang, targetLang, model))
	return nil
}

// Entries returns the recorded conversion descriptions
func (m *MockRecorder) Entries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.entries...)
}
