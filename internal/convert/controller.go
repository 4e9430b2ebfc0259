package convert

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"codeberg.org/snonux/codeshift/internal/language"
)

// ErrBusy is returned when a conversion is requested while another one
// is still in flight. At most one request runs per controller.
var ErrBusy = errors.New("a conversion is already in flight")

// copiedResetDelay is how long the transient "copied" indicator stays on
// after a successful clipboard write.
const copiedResetDelay = 2 * time.Second

// State is the conversion axis of the controller state machine.
type State int

const (
	StateIdle State = iota
	StateInFlight
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateInFlight:
		return "InFlight"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Snapshot is a read-only copy of the controller state handed to the UI.
type Snapshot struct {
	State          State
	SourceText     string
	SourceLanguage string
	TargetLanguage string
	Result         string
	ErrorMessage   string
	Copied         bool
}

// Clipboard is the platform clipboard as the controller sees it: a
// write-only text sink that may fail.
type Clipboard interface {
	SetContent(text string) error
}

// Recorder persists finished conversions. Recording failures never fail
// a conversion.
type Recorder interface {
	RecordConversion(sourceLang, targetLang, sourceText, resultText, model string) error
}

// Controller owns the conversion state the UI renders: source text,
// language pair, result, in-flight flag and last error. All mutation
// happens through Convert, Swap and CopyResult; the UI observes via
// Snapshot and the OnChange callback.
type Controller struct {
	engine    *Engine
	clipboard Clipboard
	recorder  Recorder
	onChange  func(Snapshot)

	mu         sync.Mutex
	state      State
	sourceText string
	sourceLang string
	targetLang string
	result     string
	errMsg     string
	copied     bool
	copyTimer  *time.Timer
	closed     bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewController creates a controller in the Idle state with the
// auto-detect sentinel selected as source.
func NewController(engine *Engine, clipboard Clipboard) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		engine:     engine,
		clipboard:  clipboard,
		state:      StateIdle,
		sourceLang: language.Auto,
		targetLang: language.SwapFallback,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetOnChange registers the callback fired after every state change.
// The callback runs on the goroutine that caused the change; the GUI
// wraps it in fyne.Do.
func (c *Controller) SetOnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// SetRecorder registers an optional history recorder
func (c *Controller) SetRecorder(r Recorder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recorder = r
}

// Snapshot returns a copy of the current controller state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Convert starts a conversion of sourceText from sourceLang to
// targetLang. It rejects empty input and re-entry while a conversion is
// in flight; otherwise it transitions to InFlight, clears any previous
// error and completes asynchronously through the OnChange callback.
func (c *Controller) Convert(sourceText, sourceLang, targetLang string) error {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		return errors.New("controller is closed")
	}
	if c.state == StateInFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	if strings.TrimSpace(sourceText) == "" {
		c.errMsg = ErrEmptyInput.Error()
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
		return ErrEmptyInput
	}

	c.state = StateInFlight
	c.errMsg = ""
	c.sourceText = sourceText
	c.sourceLang = sourceLang
	c.targetLang = targetLang
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.runConversion(sourceText, sourceLang, targetLang)
	}()

	return nil
}

func (c *Controller) runConversion(sourceText, sourceLang, targetLang string) {
	res, err := c.engine.Convert(c.ctx, Request{
		SourceText:     sourceText,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
	})

	c.mu.Lock()
	if c.closed {
		// The consumer is gone; do not fire callbacks for a result
		// nobody observes.
		c.mu.Unlock()
		return
	}
	var recorder Recorder
	if err != nil {
		c.state = StateFailed
		c.errMsg = err.Error()
	} else {
		c.state = StateSucceeded
		c.result = res.Text
		recorder = c.recorder
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	if recorder != nil {
		if rerr := recorder.RecordConversion(sourceLang, targetLang, sourceText, res.Text, c.engine.ModelLabel()); rerr != nil {
			log.Printf("Warning: failed to record conversion history: %v", rerr)
		}
	}
}

// Swap exchanges the source and target language selections. When the
// source was the auto-detect sentinel the previous target becomes the
// source and the target falls back to a fixed language, so the pair is
// never ambiguous. Any result text moves into the source field and the
// result is cleared. No model call is made.
func (c *Controller) Swap() {
	c.mu.Lock()

	prevSource, prevTarget := c.sourceLang, c.targetLang
	if prevSource == language.Auto {
		c.sourceLang = prevTarget
		c.targetLang = language.SwapFallback
	} else {
		c.sourceLang = prevTarget
		c.targetLang = prevSource
	}

	if c.result != "" {
		c.sourceText = c.result
		c.result = ""
	}

	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// CopyResult writes the result text to the clipboard. Without a result
// it does nothing. A successful write turns on the transient "copied"
// indicator which auto-reverts after two seconds; a failed write is
// logged and otherwise swallowed.
func (c *Controller) CopyResult() {
	c.mu.Lock()
	text := c.result
	c.mu.Unlock()

	if text == "" {
		return
	}

	if err := c.clipboard.SetContent(text); err != nil {
		log.Printf("Warning: failed to copy result to clipboard: %v", err)
		return
	}

	c.mu.Lock()
	c.copied = true
	if c.copyTimer != nil {
		c.copyTimer.Stop()
	}
	c.copyTimer = time.AfterFunc(copiedResetDelay, c.resetCopied)
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

func (c *Controller) resetCopied() {
	c.mu.Lock()
	if c.closed || !c.copied {
		c.mu.Unlock()
		return
	}
	c.copied = false
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// SetSourceText keeps the controller's copy of the source buffer in
// sync with the editor widget.
func (c *Controller) SetSourceText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sourceText = text
}

// SetLanguages updates the language selection without converting
func (c *Controller) SetLanguages(sourceLang, targetLang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sourceLang != "" {
		c.sourceLang = sourceLang
	}
	if targetLang != "" {
		c.targetLang = targetLang
	}
}

// Close cancels any in-flight conversion and stops all callbacks. It
// blocks until the conversion goroutine has finished.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.copyTimer != nil {
		c.copyTimer.Stop()
	}
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:          c.state,
		SourceText:     c.sourceText,
		SourceLanguage: c.sourceLang,
		TargetLanguage: c.targetLang,
		Result:         c.result,
		ErrorMessage:   c.errMsg,
		Copied:         c.copied,
	}
}

func (c *Controller) notify(snap Snapshot) {
	c.mu.Lock()
	fn := c.onChange
	closed := c.closed
	c.mu.Unlock()

	if fn != nil && !closed {
		fn(snap)
	}
}
