// Package sqlite persists search-dock UI state between runs: the last
// scope/type selection and a short recent-search history. The source index
// itself is never persisted; every run rebuilds it from the live graph.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const maxRecentSearches = 20

// Store wraps the state database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the state database at path. A leading ~ expands to
// the user's home directory.
func Open(path string) (*Store, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	// Pragmas + schema in a single batch.
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS ui_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS recent_searches (
			query   TEXT PRIMARY KEY,
			used_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup state database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSelection stores the last scope and type filter.
func (s *Store) SaveSelection(scope, typeFilter string) error {
	_, err := s.db.Exec(`
		INSERT INTO ui_state (key, value) VALUES ('scope', ?), ('type_filter', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, scope, typeFilter)
	if err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

// LoadSelection returns the last scope and type filter; empty strings when
// nothing was saved yet.
func (s *Store) LoadSelection() (scope, typeFilter string, err error) {
	rows, err := s.db.Query(`SELECT key, value FROM ui_state WHERE key IN ('scope', 'type_filter')`)
	if err != nil {
		return "", "", fmt.Errorf("failed to load selection: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return "", "", err
		}
		switch key {
		case "scope":
			scope = value
		case "type_filter":
			typeFilter = value
		}
	}
	return scope, typeFilter, rows.Err()
}

// AddRecentSearch records a query, keeping at most maxRecentSearches entries.
// Re-searching an old query bumps it to the top.
func (s *Store) AddRecentSearch(query string) error {
	if query == "" {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO recent_searches (query, used_at) VALUES (?, ?)
		ON CONFLICT(query) DO UPDATE SET used_at = excluded.used_at
	`, query, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}

	_, err = s.db.Exec(`
		DELETE FROM recent_searches WHERE query NOT IN (
			SELECT query FROM recent_searches ORDER BY used_at DESC LIMIT ?
		)
	`, maxRecentSearches)
	if err != nil {
		return fmt.Errorf("failed to trim search history: %w", err)
	}
	return nil
}

// RecentSearches returns up to limit queries, most recent first.
func (s *Store) RecentSearches(limit int) ([]string, error) {
	if limit <= 0 || limit > maxRecentSearches {
		limit = maxRecentSearches
	}
	rows, err := s.db.Query(
		`SELECT query FROM recent_searches ORDER BY used_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load search history: %w", err)
	}
	defer rows.Close()

	var queries []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}
