// Package history persists every word resolution in a SQLite database and
// aggregates the process statistics exposed at /stats.
package history

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/lugha/internal/resolver"
)

// Store is a SQLite-backed translation log. *sql.DB serializes access, so a
// single Store may be shared between request handlers.
type Store struct {
	db *sql.DB
}

// Stats aggregates the recorded resolutions.
type Stats struct {
	TotalRequests          int64            `json:"total_requests"`
	SuccessfulTranslations int64            `json:"successful_translations"`
	FailedTranslations     int64            `json:"failed_translations"`
	MethodsUsed            map[string]int64 `json:"methods_used"`
}

// Open opens (and if necessary creates) the translation log at path. Use
// ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS translations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		word TEXT NOT NULL,
		translation TEXT NOT NULL,
		target_language TEXT NOT NULL,
		method TEXT NOT NULL,
		success INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_translations_method ON translations(method);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one resolution to the log.
func (s *Store) Record(res resolver.Result) error {
	_, err := s.db.Exec(
		`INSERT INTO translations (word, translation, target_language, method, success) VALUES (?, ?, ?, ?, ?)`,
		res.Input, res.Translation, res.TargetLanguage.String(), string(res.Method), res.Success,
	)
	if err != nil {
		return fmt.Errorf("failed to record translation: %w", err)
	}
	return nil
}

// Stats returns aggregate counts over the whole log.
func (s *Store) Stats() (Stats, error) {
	stats := Stats{MethodsUsed: make(map[string]int64)}

	rows, err := s.db.Query(`SELECT method, success, COUNT(*) FROM translations GROUP BY method, success`)
	if err != nil {
		return stats, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var method string
		var success bool
		var count int64
		if err := rows.Scan(&method, &success, &count); err != nil {
			return stats, fmt.Errorf("failed to scan stats row: %w", err)
		}
		stats.TotalRequests += count
		if success {
			stats.SuccessfulTranslations += count
		} else {
			stats.FailedTranslations += count
		}
		stats.MethodsUsed[method] += count
	}
	return stats, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
