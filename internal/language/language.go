// Package language defines the fixed set of programming languages codeshift
// can convert between, the auto-detect sentinel and the mapping from language
// names to the editor widget's syntax-highlighting tags.
package language

import (
	"fmt"
	"strings"
)

// Auto is the sentinel source selection meaning "let the model infer
// the original language". It is never a valid conversion target.
const Auto = "Auto Detect"

// SwapFallback is the target language used when swapping away from the
// auto-detect sentinel, so a swap never produces an ambiguous pair.
const SwapFallback = "JavaScript"

// supported is the fixed language enumeration, in display order.
var supported = []string{
	"Python",
	"JavaScript",
	"TypeScript",
	"Java",
	"Go",
	"C",
	"C++",
	"C#",
	"Rust",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
}

// editorTags maps language names to the editor widget's tag vocabulary
// where lower-casing the name is not enough.
var editorTags = map[string]string{
	"C++": "cpp",
	"C#":  "csharp",
	Auto:  "plaintext",
}

// Table is an immutable view over the language enumeration. It is built
// once at startup and passed to the components that need it instead of
// being read from package globals.
type Table struct {
	languages []string
}

// NewTable returns the language table with the fixed enumeration.
func NewTable() *Table {
	return &Table{languages: supported}
}

// Sources returns the valid source selections, auto-detect first.
func (t *Table) Sources() []string {
	out := make([]string, 0, len(t.languages)+1)
	out = append(out, Auto)
	out = append(out, t.languages...)
	return out
}

// Targets returns the valid target selections. The auto-detect sentinel
// is not a target.
func (t *Table) Targets() []string {
	return append([]string{}, t.languages...)
}

// ValidSource reports whether name is a valid source selection.
func (t *Table) ValidSource(name string) bool {
	if name == Auto {
		return true
	}
	return t.contains(name)
}

// ValidTarget reports whether name is a valid target selection.
func (t *Table) ValidTarget(name string) bool {
	return t.contains(name)
}

// Resolve normalises a user-supplied language name (case-insensitive)
// to its canonical table entry.
func (t *Table) Resolve(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if strings.EqualFold(trimmed, Auto) || strings.EqualFold(trimmed, "auto") {
		return Auto, nil
	}
	for _, l := range t.languages {
		if strings.EqualFold(l, trimmed) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language: %s", name)
}

// EditorTag returns the syntax-highlighting tag the editor widget uses
// for the given language. Unknown names fall back to lower-casing.
func EditorTag(name string) string {
	if tag, ok := editorTags[name]; ok {
		return tag
	}
	return strings.ToLower(name)
}

func (t *Table) contains(name string) bool {
	for _, l := range t.languages {
		if l == name {
			return true
		}
	}
	return false
}
