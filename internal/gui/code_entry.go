package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/codeshift/internal/language"
)

// CodeEntry extends widget.Entry with a monospace code buffer and an
// Escape handler so keyboard users can leave the editor.
type CodeEntry struct {
	widget.Entry
	onEscape func()
}

// NewCodeEntry creates a new multi-line code entry
func NewCodeEntry() *CodeEntry {
	entry := &CodeEntry{}
	entry.MultiLine = true
	entry.Wrapping = fyne.TextWrapOff
	entry.TextStyle = fyne.TextStyle{Monospace: true}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedKey handles key events
func (e *CodeEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// SetOnEscape sets the callback for when Escape is pressed
func (e *CodeEntry) SetOnEscape(f func()) {
	e.onEscape = f
}

// SetLanguageHint updates the placeholder with the editor tag for the
// selected language so the user sees what the buffer is treated as.
func (e *CodeEntry) SetLanguageHint(lang, role string) {
	e.SetPlaceHolder(role + " (" + language.EditorTag(lang) + ")... Press Escape to exit field")
}
