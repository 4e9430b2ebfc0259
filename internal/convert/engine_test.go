package convert

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/codeshift/internal/language"
	"codeberg.org/snonux/codeshift/internal/provider"
	"codeberg.org/snonux/codeshift/internal/testutil"
)

func newTestEngine(p provider.Provider) *Engine {
	return NewEngine(p, language.NewTable(), provider.DefaultConfig())
}

func TestEngineConvertIssuesOneCall(t *testing.T) {
	mock := &testutil.MockProvider{Response: "fmt.Println(1)"}
	engine := newTestEngine(mock)

	source := "print(1)"
	res, err := engine.Convert(context.Background(), Request{
		SourceText:     source,
		SourceLanguage: "Python",
		TargetLanguage: "Go",
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if res.Text != "fmt.Println(1)" {
		t.Errorf("Unexpected result: %q", res.Text)
	}

	calls := mock.Calls()
	if len(calls) != 1 {
		t.Fatalf("Expected exactly one provider call, got %d", len(calls))
	}

	prompt := calls[0].Prompt
	if !strings.Contains(prompt, source) {
		t.Error("Prompt does not contain the verbatim source text")
	}
	if !strings.Contains(prompt, "Python") || !strings.Contains(prompt, "Go") {
		t.Error("Prompt does not contain the resolved language names")
	}
}

func TestEngineConvertEmptyInput(t *testing.T) {
	mock := &testutil.MockProvider{}
	engine := newTestEngine(mock)

	for _, source := range []string{"", "   ", "\n\t  \n"} {
		_, err := engine.Convert(context.Background(), Request{
			SourceText:     source,
			SourceLanguage: "Python",
			TargetLanguage: "Go",
		})
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Expected ErrEmptyInput for %q, got %v", source, err)
		}
	}

	if mock.CallCount() != 0 {
		t.Errorf("Expected zero provider calls for empty input, got %d", mock.CallCount())
	}
}

func TestEngineConvertStripsFencedOutput(t *testing.T) {
	mock := &testutil.MockProvider{Response: "```python\nprint(1)\n```"}
	engine := newTestEngine(mock)

	res, err := engine.Convert(context.Background(), Request{
		SourceText:     "console.log(1)",
		SourceLanguage: "JavaScript",
		TargetLanguage: "Python",
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if res.Text != "print(1)" {
		t.Errorf("Expected fences stripped, got %q", res.Text)
	}
}

func TestEngineConvertInvalidLanguages(t *testing.T) {
	mock := &testutil.MockProvider{}
	engine := newTestEngine(mock)

	tests := []struct {
		name   string
		source string
		target string
	}{
		{"bogus source", "Klingon", "Go"},
		{"bogus target", "Go", "Klingon"},
		{"auto as target", "Go", language.Auto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Convert(context.Background(), Request{
				SourceText:     "x = 1",
				SourceLanguage: tt.source,
				TargetLanguage: tt.target,
			})
			if err == nil {
				t.Error("Expected error for invalid language pair")
			}
		})
	}

	if mock.CallCount() != 0 {
		t.Errorf("Expected zero provider calls, got %d", mock.CallCount())
	}
}

func TestEngineConvertProviderError(t *testing.T) {
	mock := &testutil.MockProvider{Err: errors.New("connection refused")}
	engine := newTestEngine(mock)

	_, err := engine.Convert(context.Background(), Request{
		SourceText:     "x = 1",
		SourceLanguage: "Python",
		TargetLanguage: "Go",
	})
	if err == nil {
		t.Fatal("Expected provider error to propagate")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Provider message not passed through: %v", err)
	}
}

func TestEngineConvertEmptyModelOutput(t *testing.T) {
	mock := &testutil.MockProvider{Response: "   \n  "}
	engine := newTestEngine(mock)

	_, err := engine.Convert(context.Background(), Request{
		SourceText:     "x = 1",
		SourceLanguage: "Python",
		TargetLanguage: "Go",
	})
	if err == nil {
		t.Fatal("Expected error for empty model output")
	}
}
