package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/codeshift/internal/language"
	"codeberg.org/snonux/codeshift/internal/provider"
)

// ErrEmptyInput is returned when the source text is empty after trimming.
// No model call is made in that case.
var ErrEmptyInput = errors.New("source code is empty")

// Request describes one conversion: the code to convert and the chosen
// language pair. SourceLanguage may be the auto-detect sentinel.
type Request struct {
	SourceText     string
	SourceLanguage string
	TargetLanguage string
}

// Result holds the converted code of a successful conversion.
type Result struct {
	Text string
}

// Engine runs a single conversion end to end: validate, build the
// prompt, call the provider once and sanitize the output. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	provider provider.Provider
	table    *language.Table
	config   *provider.Config
}

// NewEngine creates a conversion engine on top of the given provider
func NewEngine(p provider.Provider, table *language.Table, config *provider.Config) *Engine {
	if config == nil {
		config = provider.DefaultConfig()
	}
	return &Engine{provider: p, table: table, config: config}
}

// Convert performs one conversion. It makes exactly one provider call
// for valid input and none otherwise. The call runs under the
// configured per-request timeout.
func (e *Engine) Convert(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.SourceText) == "" {
		return Result{}, ErrEmptyInput
	}
	if !e.table.ValidSource(req.SourceLanguage) {
		return Result{}, fmt.Errorf("invalid source language: %s", req.SourceLanguage)
	}
	if !e.table.ValidTarget(req.TargetLanguage) {
		return Result{}, fmt.Errorf("invalid target language: %s", req.TargetLanguage)
	}

	prompt := buildPrompt(req.SourceLanguage, req.TargetLanguage, req.SourceText)

	ctx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	out, err := e.provider.Complete(ctx, provider.Request{
		Prompt:      prompt,
		Model:       e.config.Model,
		Temperature: e.config.Temperature,
		MaxTokens:   e.config.MaxTokens,
	})
	if err != nil {
		return Result{}, fmt.Errorf("conversion failed: %w", err)
	}

	text := StripFences(out)
	if text == "" {
		return Result{}, fmt.Errorf("model returned no code")
	}

	return Result{Text: text}, nil
}

// ModelLabel returns a human-readable provider/model label, used when
// recording conversions in the history store.
func (e *Engine) ModelLabel() string {
	if e.config.Model != "" {
		return fmt.Sprintf("%s/%s", e.provider.Name(), e.config.Model)
	}
	return e.provider.Name()
}
