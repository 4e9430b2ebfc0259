package gui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/codeshift/internal"
	"codeberg.org/snonux/codeshift/internal/convert"
	"codeberg.org/snonux/codeshift/internal/history"
	"codeberg.org/snonux/codeshift/internal/language"
	"codeberg.org/snonux/codeshift/internal/provider"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	sourceEntry  *CodeEntry
	outputEntry  *CodeEntry
	sourceSelect *widget.Select
	targetSelect *widget.Select
	statusLabel  *widget.Label
	modelLabel   *widget.Label
	logViewer    *LogViewer

	// Action buttons
	convertButton *ttwidget.Button
	swapButton    *ttwidget.Button
	copyButton    *ttwidget.Button
	historyButton *ttwidget.Button

	// Conversion state
	table      *language.Table
	engine     *convert.Engine
	controller *convert.Controller
	store      *history.Store

	// lastState tracks the previous snapshot state so the error dialog
	// only fires on the transition into Failed, not on every refresh.
	lastState convert.State
}

// Config holds GUI application configuration
type Config struct {
	ProviderConfig *provider.Config
	HistoryPath    string
}

// windowClipboard adapts the Fyne window clipboard to the controller's
// Clipboard interface. Fyne's SetContent cannot report failure, so the
// write is assumed to succeed.
type windowClipboard struct {
	window fyne.Window
}

func (c windowClipboard) SetContent(text string) error {
	c.window.Clipboard().SetContent(text)
	return nil
}

// New creates a new GUI application
func New(config *Config) (*Application, error) {
	if config == nil {
		config = &Config{}
	}
	if config.ProviderConfig == nil {
		config.ProviderConfig = provider.DefaultConfig()
	}
	if config.HistoryPath == "" {
		config.HistoryPath = history.DefaultPath()
	}

	prov, err := provider.NewProvider(config.ProviderConfig)
	if err != nil {
		return nil, err
	}

	table := language.NewTable()

	a := &Application{
		app:    app.NewWithID("org.codeberg.snonux.codeshift"),
		table:  table,
		engine: convert.NewEngine(prov, table, config.ProviderConfig),
	}
	a.app.SetIcon(GetAppIcon())

	a.setupUI()

	a.controller = convert.NewController(a.engine, windowClipboard{window: a.window})
	a.controller.SetOnChange(func(snap convert.Snapshot) {
		fyne.Do(func() {
			a.applySnapshot(snap)
		})
	})

	store, err := history.Open(config.HistoryPath)
	if err != nil {
		log.Printf("Warning: conversion history disabled: %v", err)
	} else {
		a.store = store
		a.controller.SetRecorder(store)
	}

	a.window.SetOnClosed(func() {
		a.logViewer.StopCapture()
		a.controller.Close()
		if a.store != nil {
			a.store.Close()
		}
	})

	return a, nil
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("CodeShift v%s - Code Converter", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(1000, 720))

	// Source editor
	a.sourceEntry = NewCodeEntry()
	a.sourceEntry.SetPlaceHolder("Paste source code here... Press Escape to leave the field")
	a.sourceEntry.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})
	a.sourceEntry.OnChanged = func(text string) {
		if a.controller != nil {
			a.controller.SetSourceText(text)
		}
	}

	// Output editor (read-only)
	a.outputEntry = NewCodeEntry()
	a.outputEntry.SetPlaceHolder("Converted code will appear here...")
	a.outputEntry.Disable()

	// Language selects
	a.sourceSelect = widget.NewSelect(a.table.Sources(), func(string) {
		a.onLanguageChanged()
	})
	a.sourceSelect.SetSelected(language.Auto)

	a.targetSelect = widget.NewSelect(a.table.Targets(), func(string) {
		a.onLanguageChanged()
	})
	a.targetSelect.SetSelected(language.SwapFallback)

	// Action buttons (tooltips are set after the tooltip layer exists)
	a.convertButton = ttwidget.NewButtonWithIcon("Convert", theme.MediaPlayIcon(), a.onConvert)
	a.swapButton = ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), a.onSwap)
	a.copyButton = ttwidget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), a.onCopy)
	a.historyButton = ttwidget.NewButtonWithIcon("", theme.HistoryIcon(), a.onShowHistory)

	languageBar := container.NewBorder(
		nil, nil,
		container.NewHBox(
			widget.NewLabel("From:"),
			a.sourceSelect,
			a.swapButton,
			widget.NewLabel("To:"),
			a.targetSelect,
		),
		container.NewHBox(a.historyButton, a.convertButton),
	)

	// Side-by-side editors with scrolling
	editorSection := container.NewHSplit(
		container.NewScroll(a.sourceEntry),
		container.NewScroll(a.outputEntry),
	)
	editorSection.SetOffset(0.5)

	// Status bar
	a.statusLabel = widget.NewLabel("Ready")
	a.modelLabel = widget.NewLabel(a.engine.ModelLabel())
	statusBar := container.NewBorder(
		nil, nil,
		a.statusLabel,
		container.NewHBox(a.modelLabel, a.copyButton),
	)

	// Log viewer below the status bar
	a.logViewer = NewLogViewer()
	a.logViewer.StartCapture()

	bottomSection := container.NewVBox(
		widget.NewSeparator(),
		statusBar,
		a.logViewer,
	)

	content := container.NewBorder(
		container.NewVBox(languageBar, widget.NewSeparator()),
		bottomSection,
		nil, nil,
		editorSection,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))
	a.setupTooltips()
	a.setupKeyboardShortcuts()
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.convertButton.SetToolTip("Convert source code (g)")
	a.swapButton.SetToolTip("Swap languages (s)")
	a.copyButton.SetToolTip("Copy result to clipboard (y)")
	a.historyButton.SetToolTip("Recent conversions (h)")
}

func (a *Application) setupKeyboardShortcuts() {
	a.window.Canvas().SetOnTypedRune(func(r rune) {
		// Let typing reach a focused editor untouched
		focused := a.window.Canvas().Focused()
		if focused == a.sourceEntry || focused == a.outputEntry {
			return
		}

		switch r {
		case 'g', 'G':
			if !a.convertButton.Disabled() {
				a.onConvert()
			}
		case 's', 'S':
			if !a.swapButton.Disabled() {
				a.onSwap()
			}
		case 'y', 'Y':
			if !a.copyButton.Disabled() {
				a.onCopy()
			}
		case 'h', 'H':
			a.onShowHistory()
		case 'b', 'B':
			a.window.Canvas().Focus(a.sourceEntry)
		}
	})
}

// onConvert starts a conversion for the current editor contents
func (a *Application) onConvert() {
	err := a.controller.Convert(a.sourceEntry.Text, a.sourceSelect.Selected, a.targetSelect.Selected)
	if err != nil {
		// Empty input and busy rejections surface through the snapshot
		// callback; nothing more to do here.
		log.Printf("Conversion rejected: %v", err)
	}
}

func (a *Application) onSwap() {
	a.controller.Swap()
}

func (a *Application) onCopy() {
	a.controller.CopyResult()
}

// onLanguageChanged pushes the current select values to the controller.
func (a *Application) onLanguageChanged() {
	if a.controller == nil {
		return
	}
	a.controller.SetLanguages(a.sourceSelect.Selected, a.targetSelect.Selected)
}

// onShowHistory opens a dialog listing recent conversions. Selecting an
// entry loads it back into the editors.
func (a *Application) onShowHistory() {
	if a.store == nil {
		dialog.ShowInformation("History", "Conversion history is not available.", a.window)
		return
	}

	entries, err := a.store.Recent(25)
	if err != nil {
		a.showError(fmt.Errorf("failed to load history: %w", err))
		return
	}
	if len(entries) == 0 {
		dialog.ShowInformation("History", "No conversions recorded yet.", a.window)
		return
	}

	list := widget.NewList(
		func() int { return len(entries) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			e := entries[i]
			o.(*widget.Label).SetText(fmt.Sprintf("%s  %s -> %s  (%s)",
				e.CreatedAt.Format("2006-01-02 15:04"), e.SourceLang, e.TargetLang, e.Model))
		},
	)

	scroll := container.NewScroll(list)
	scroll.SetMinSize(fyne.NewSize(520, 320))
	d := dialog.NewCustom("Recent Conversions", "Close", scroll, a.window)

	list.OnSelected = func(i widget.ListItemID) {
		e := entries[i]
		a.sourceEntry.SetText(e.SourceText)
		a.outputEntry.SetText(e.ResultText)
		a.sourceSelect.SetSelected(e.SourceLang)
		a.targetSelect.SetSelected(e.TargetLang)
		a.controller.SetSourceText(e.SourceText)
		d.Hide()
	}

	d.Show()
}

// applySnapshot renders a controller snapshot. It runs on the UI thread
// and only touches widgets whose values actually changed, since SetText
// and SetSelected fire their change callbacks.
func (a *Application) applySnapshot(snap convert.Snapshot) {
	if snap.SourceText != a.sourceEntry.Text {
		a.sourceEntry.SetText(snap.SourceText)
	}
	if snap.Result != a.outputEntry.Text {
		a.outputEntry.SetText(snap.Result)
	}
	if snap.SourceLanguage != a.sourceSelect.Selected {
		a.sourceSelect.SetSelected(snap.SourceLanguage)
	}
	if snap.TargetLanguage != a.targetSelect.Selected {
		a.targetSelect.SetSelected(snap.TargetLanguage)
	}
	a.sourceEntry.SetLanguageHint(snap.SourceLanguage, "source")
	a.outputEntry.SetLanguageHint(snap.TargetLanguage, "output")

	switch snap.State {
	case convert.StateInFlight:
		a.convertButton.Disable()
		a.swapButton.Disable()
		a.statusLabel.SetText(fmt.Sprintf("Converting %s to %s...", snap.SourceLanguage, snap.TargetLanguage))
	case convert.StateSucceeded:
		a.convertButton.Enable()
		a.swapButton.Enable()
		a.statusLabel.SetText("Done")
	case convert.StateFailed:
		a.convertButton.Enable()
		a.swapButton.Enable()
		a.statusLabel.SetText("Error: " + snap.ErrorMessage)
		if a.lastState != convert.StateFailed {
			dialog.ShowError(fmt.Errorf("conversion failed: %s", snap.ErrorMessage), a.window)
		}
	default:
		a.convertButton.Enable()
		a.swapButton.Enable()
		if snap.ErrorMessage != "" {
			a.statusLabel.SetText("Error: " + snap.ErrorMessage)
		} else {
			a.statusLabel.SetText("Ready")
		}
	}

	if snap.Result == "" {
		a.copyButton.Disable()
	} else {
		a.copyButton.Enable()
	}
	if snap.Copied {
		a.copyButton.SetText("Copied!")
	} else {
		a.copyButton.SetText("Copy")
	}

	a.lastState = snap.State
}

func (a *Application) showError(err error) {
	dialog.ShowError(err, a.window)
	a.statusLabel.SetText("Error: " + err.Error())
}
