// Package history persists menu selections made in the demo so past choices
// can be replayed and inspected from the CLI.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const dbFile = ".dropdown/history.db"

const schema = `
-- Selections table
CREATE TABLE IF NOT EXISTS selections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    label TEXT NOT NULL,
    value TEXT NOT NULL,
    placement TEXT NOT NULL DEFAULT '',
    selected_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Indexes
CREATE INDEX IF NOT EXISTS idx_selections_selected_at ON selections(selected_at);
`

// Selection is one recorded menu choice.
type Selection struct {
	ID         int64
	Label      string
	Value      string
	Placement  string
	SelectedAt time.Time
}

// Store wraps the database connection
type Store struct {
	conn    *sql.DB
	baseDir string
}

// Open opens the history database, creating it on first use
func Open(baseDir string) (*Store, error) {
	dbPath := filepath.Join(baseDir, dbFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for concurrent reads while writes are serialized
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Set busy timeout as fallback protection
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	// Slightly faster writes, still safe with WAL
	conn.Exec("PRAGMA synchronous=NORMAL")

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{conn: conn, baseDir: baseDir}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.conn.Close()
}

// BaseDir returns the base directory for the database
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Record stores one selection
func (s *Store) Record(label, value, placement string) error {
	_, err := s.conn.Exec(
		`INSERT INTO selections (label, value, placement) VALUES (?, ?, ?)`,
		label, value, placement,
	)
	if err != nil {
		return fmt.Errorf("record selection: %w", err)
	}
	return nil
}

// Recent returns the most recent selections, newest first
func (s *Store) Recent(limit int) ([]Selection, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.conn.Query(
		`SELECT id, label, value, placement, selected_at
		 FROM selections
		 ORDER BY selected_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query selections: %w", err)
	}
	defer rows.Close()

	var out []Selection
	for rows.Next() {
		var sel Selection
		if err := rows.Scan(&sel.ID, &sel.Label, &sel.Value, &sel.Placement, &sel.SelectedAt); err != nil {
			return nil, fmt.Errorf("scan selection: %w", err)
		}
		out = append(out, sel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate selections: %w", err)
	}

	return out, nil
}

// Count returns the total number of recorded selections
func (s *Store) Count() (int, error) {
	var n int
	if err := s.conn.QueryRow(`SELECT COUNT(*) FROM selections`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count selections: %w", err)
	}
	return n, nil
}

// Clear removes all recorded selections
func (s *Store) Clear() error {
	if _, err := s.conn.Exec(`DELETE FROM selections`); err != nil {
		return fmt.Errorf("clear selections: %w", err)
	}
	return nil
}
