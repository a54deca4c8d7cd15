// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bible-search/pkg/types"
)

// AddBookmark saves ref. Bookmarking the same verse twice returns
// ErrDuplicate.
func (s *Store) AddBookmark(ctx context.Context, ref types.Reference) (types.Bookmark, error) {
	created := s.now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO bookmarks (book, chapter, verse, text, created_at) VALUES (?, ?, ?, ?, ?)`,
		ref.Book, ref.Chapter, ref.Verse, ref.Text, created.Format(time.RFC3339Nano),
	)
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
			return types.Bookmark{}, fmt.Errorf("%s: %w", ref, ErrDuplicate)
		}
		return types.Bookmark{}, fmt.Errorf("inserting bookmark: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return types.Bookmark{}, fmt.Errorf("reading bookmark id: %w", err)
	}
	return types.Bookmark{ID: id, Reference: ref, CreatedAt: created}, nil
}

// Bookmarks returns every bookmark in the order it was saved.
func (s *Store) Bookmarks(ctx context.Context) ([]types.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, book, chapter, verse, text, created_at FROM bookmarks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}
	defer rows.Close()

	var out []types.Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// RemoveBookmark deletes the bookmark for ref.
func (s *Store) RemoveBookmark(ctx context.Context, ref types.Reference) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE book = ? AND chapter = ? AND verse = ?`,
		ref.Book, ref.Chapter, ref.Verse,
	)
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bookmark %s: %w", ref, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBookmark(row scanner) (types.Bookmark, error) {
	var (
		b  types.Bookmark
		ts string
	)
	err := row.Scan(&b.ID, &b.Reference.Book, &b.Reference.Chapter, &b.Reference.Verse, &b.Reference.Text, &ts)
	if err != nil {
		return b, fmt.Errorf("scanning bookmark: %w", err)
	}
	if b.CreatedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
		return b, fmt.Errorf("parsing timestamp %q: %w", ts, err)
	}
	return b, nil
}
