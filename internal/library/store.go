// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library persists search history and bookmarks in a SQLite
// database under the configured data directory.
package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bible-search/pkg/types"
)

const dbFile = "library.db"

var (
	// ErrNotFound is returned when a bookmark does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a reference is already bookmarked.
	ErrDuplicate = errors.New("already bookmarked")
)

// Store manages the library SQLite database.
type Store struct {
	db      *sql.DB
	dataDir string
	now     func() time.Time
}

// NewStore opens or creates dataDir/library.db and its schema.
func NewStore(cfg types.LibraryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dataDir: cfg.DataDir, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DataDir returns the directory holding the database and exports.
func (s *Store) DataDir() string {
	return s.dataDir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			searched_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bookmarks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			book TEXT NOT NULL,
			chapter INTEGER NOT NULL,
			verse INTEGER NOT NULL,
			text TEXT NOT NULL,
			created_at TEXT NOT NULL,
			UNIQUE (book, chapter, verse)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordSearch appends query to the history with the current time.
func (s *Store) RecordSearch(ctx context.Context, query string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (query, searched_at) VALUES (?, ?)`,
		query, s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// History returns the most recent limit entries, oldest first. A limit of
// zero or less returns the whole history.
func (s *Store) History(ctx context.Context, limit int) ([]types.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, searched_at FROM (
			SELECT id, query, searched_at FROM history ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var (
			e  types.HistoryEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Query, &ts); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if e.SearchedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearHistory deletes every history entry and returns how many were removed.
func (s *Store) ClearHistory(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}
