// Package history persists recent conversions in a local SQLite
// database so the GUI can offer them again and the CLI can list them.
// History is best-effort: recording failures are reported to the caller
// but never abort a conversion.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// maxEntries caps the stored history; older rows are pruned on insert.
const maxEntries = 100

// Entry is one recorded conversion
type Entry struct {
	ID         int64
	SourceLang string
	TargetLang string
	SourceText string
	ResultText string
	Model      string
	CreatedAt  time.Time
}

// Store is a SQLite-backed conversion history
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default history database location, following
// the XDG state directory convention.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "codeshift", "history.db")
}

// Open opens (and if needed creates) the history database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	query := `CREATE TABLE IF NOT EXISTS conversions (
		id integer PRIMARY KEY AUTOINCREMENT,
		source_lang text NOT NULL,
		target_lang text NOT NULL,
		source_text text NOT NULL,
		result_text text NOT NULL,
		model text NOT NULL,
		created_at integer NOT NULL
	)`

	_, err := s.db.Exec(query)
	return err
}

// RecordConversion stores a finished conversion and prunes old rows.
// It implements the converter's Recorder interface.
func (s *Store) RecordConversion(sourceLang, targetLang, sourceText, resultText, model string) error {
	_, err := s.db.Exec(
		`INSERT INTO conversions (source_lang, target_lang, source_text, result_text, model, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sourceLang, targetLang, sourceText, resultText, model, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}

	_, err = s.db.Exec(
		`DELETE FROM conversions WHERE id NOT IN (
			SELECT id FROM conversions ORDER BY id DESC LIMIT ?
		)`, maxEntries,
	)
	if err != nil {
		return fmt.Errorf("failed to prune conversion history: %w", err)
	}

	return nil
}

// Recent returns up to limit conversions, newest first
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 || limit > maxEntries {
		limit = maxEntries
	}

	rows, err := s.db.Query(
		`SELECT id, source_lang, target_lang, source_text, result_text, model, created_at
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversion history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.SourceLang, &e.TargetLang, &e.SourceText, &e.ResultText, &e.Model, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
