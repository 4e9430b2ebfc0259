package processor

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"codeberg.org/snonux/codeshift/internal/batch"
	"codeberg.org/snonux/codeshift/internal/cli"
	"codeberg.org/snonux/codeshift/internal/convert"
	"codeberg.org/snonux/codeshift/internal/gui"
	"codeberg.org/snonux/codeshift/internal/history"
	"codeberg.org/snonux/codeshift/internal/language"
	"codeberg.org/snonux/codeshift/internal/provider"
)

// Processor handles the one-shot and batch conversion modes
type Processor struct {
	flags       *cli.Flags
	table       *language.Table
	engine      *convert.Engine
	historyPath string
}

// NewProcessor creates a new processor from the parsed flags
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	config := cli.ProviderConfig(flags)

	p, err := provider.NewProvider(config)
	if err != nil {
		return nil, err
	}

	table := language.NewTable()
	return &Processor{
		flags:       flags,
		table:       table,
		engine:      convert.NewEngine(p, table, config),
		historyPath: history.DefaultPath(),
	}, nil
}

// ConvertFile converts a single file (or stdin for "-") and writes the
// result to the output file or stdout
func (p *Processor) ConvertFile(path string) error {
	source, err := readInput(path)
	if err != nil {
		return err
	}

	result, err := p.convert(source)
	if err != nil {
		return err
	}

	return p.writeOutput(p.flags.OutputFile, result)
}

// ProcessBatch converts every file listed in the batch file. Each
// converted file is written next to its source with the target
// language's tag appended (main.py becomes main.py.go).
func (p *Processor) ProcessBatch() error {
	paths, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	targetLang, err := p.table.Resolve(p.flags.To)
	if err != nil {
		return err
	}
	suffix := "." + language.EditorTag(targetLang)

	for i, path := range paths {
		fmt.Printf("Converting %s (%d/%d)...\n", path, i+1, len(paths))

		source, err := readInput(path)
		if err != nil {
			return err
		}

		result, err := p.convert(source)
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", path, err)
		}

		outPath := path + suffix
		if err := p.writeOutput(outPath, result); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", outPath)
	}

	return nil
}

// ShowHistory prints the last n recorded conversions
func (p *Processor) ShowHistory(n int) error {
	store, err := history.Open(p.historyPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(n)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No conversions recorded yet.")
		return nil
	}

	for _, e := range entries {
		firstLine := e.SourceText
		if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
			firstLine = firstLine[:idx]
		}
		fmt.Printf("%s  %s -> %s  [%s]  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.SourceLang, e.TargetLang, e.Model, firstLine)
	}

	return nil
}

// RunGUIMode launches the interactive GUI
func (p *Processor) RunGUIMode() error {
	app, err := gui.New(&gui.Config{
		ProviderConfig: cli.ProviderConfig(p.flags),
		HistoryPath:    p.historyPath,
	})
	if err != nil {
		return err
	}
	app.Run()
	return nil
}

func (p *Processor) convert(source string) (string, error) {
	sourceLang, err := p.table.Resolve(p.flags.From)
	if err != nil {
		return "", err
	}
	if p.flags.To == "" {
		return "", fmt.Errorf("target language is required (use --to)")
	}
	targetLang, err := p.table.Resolve(p.flags.To)
	if err != nil {
		return "", err
	}
	if !p.table.ValidTarget(targetLang) {
		return "", fmt.Errorf("invalid target language: %s", p.flags.To)
	}

	result, err := p.engine.Convert(context.Background(), convert.Request{
		SourceText:     source,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
	})
	if err != nil {
		return "", err
	}

	p.record(sourceLang, targetLang, source, result.Text)

	return result.Text, nil
}

// record stores the conversion in the history database, best-effort
func (p *Processor) record(sourceLang, targetLang, source, result string) {
	store, err := history.Open(p.historyPath)
	if err != nil {
		log.Printf("Warning: failed to open conversion history: %v", err)
		return
	}
	defer store.Close()

	if err := store.RecordConversion(sourceLang, targetLang, source, result, p.engine.ModelLabel()); err != nil {
		log.Printf("Warning: failed to record conversion history: %v", err)
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func (p *Processor) writeOutput(path, result string) error {
	if path == "" {
		fmt.Println(result)
		return nil
	}

	if err := os.WriteFile(path, []byte(result+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
