// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bible-search/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.LibraryConfig{DataDir: filepath.Join(t.TempDir(), "data")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	// Deterministic, strictly increasing clock.
	base := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return store
}

func verse(book string, chapter, v int) types.Reference {
	return types.Reference{Book: book, Chapter: chapter, Verse: v, Text: fmt.Sprintf("text of %s %d:%d", book, chapter, v)}
}

// --- schema ---

func TestNewStoreCreatesDBFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := NewStore(types.LibraryConfig{DataDir: dir})
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(dir, dbFile))
	assert.NoError(t, err)
	assert.Equal(t, dir, store.DataDir())

	for _, table := range []string{"history", "bookmarks"} {
		var count int
		require.NoError(t, store.db.QueryRow(
			`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&count))
		assert.Equal(t, 1, count, table)
	}
}

func TestNewStoreReopens(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(types.LibraryConfig{DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, first.RecordSearch(ctx, "love"))
	require.NoError(t, first.Close())

	second, err := NewStore(types.LibraryConfig{DataDir: dir})
	require.NoError(t, err)
	defer second.Close()

	entries, err := second.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "love", entries[0].Query)
}

// --- history ---

func TestHistory(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for _, q := range []string{"love", "Col 3:4", "grace", "John 3"} {
		require.NoError(t, store.RecordSearch(ctx, q))
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"all", 0, []string{"love", "Col 3:4", "grace", "John 3"}},
		{"negative means all", -3, []string{"love", "Col 3:4", "grace", "John 3"}},
		{"last two oldest first", 2, []string{"grace", "John 3"}},
		{"limit above size", 10, []string{"love", "Col 3:4", "grace", "John 3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := store.History(ctx, tt.limit)
			require.NoError(t, err)
			var got []string
			for _, e := range entries {
				got = append(got, e.Query)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	entries, err := store.History(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 9, 4, 0, 0, time.UTC), entries[0].SearchedAt)
}

func TestClearHistory(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordSearch(ctx, "a"))
	require.NoError(t, store.RecordSearch(ctx, "b"))

	n, err := store.ClearHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	entries, err := store.History(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// --- bookmarks ---

func TestBookmarks(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	b1, err := store.AddBookmark(ctx, verse("John", 3, 16))
	require.NoError(t, err)
	assert.NotZero(t, b1.ID)
	_, err = store.AddBookmark(ctx, verse("Col", 3, 4))
	require.NoError(t, err)

	_, err = store.AddBookmark(ctx, verse("John", 3, 16))
	assert.ErrorIs(t, err, ErrDuplicate)

	all, err := store.Bookmarks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, verse("John", 3, 16), all[0].Reference)
	assert.Equal(t, verse("Col", 3, 4), all[1].Reference)
	assert.True(t, all[0].CreatedAt.Before(all[1].CreatedAt))

	require.NoError(t, store.RemoveBookmark(ctx, verse("John", 3, 16)))
	assert.ErrorIs(t, store.RemoveBookmark(ctx, verse("John", 3, 16)), ErrNotFound)

	all, err = store.Bookmarks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Col 3:4", all[0].Reference.String())
}

// --- export ---

func TestExport(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.AddBookmark(ctx, verse("Ruth", 1, 16))
	require.NoError(t, err)

	yamlPath, err := store.ExportYAML(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.DataDir(), "bookmarks.yaml"), yamlPath)

	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML []ExportEntry
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, "Ruth 1:16", fromYAML[0].Reference)
	assert.Equal(t, "text of Ruth 1:16", fromYAML[0].Text)

	jsonPath, err := store.ExportJSON(ctx)
	require.NoError(t, err)
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON []ExportEntry
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, fromYAML, fromJSON)
}

// --- formatting ---

func TestFormatHistory(t *testing.T) {
	var buf strings.Builder
	FormatHistory(&buf, nil)
	assert.Equal(t, " No search history yet.\n", buf.String())

	buf.Reset()
	FormatHistory(&buf, []types.HistoryEntry{{Query: "love", SearchedAt: time.Now()}, {Query: "Col 3:4", SearchedAt: time.Now()}})
	out := buf.String()
	assert.Contains(t, out, "    1. [")
	assert.Contains(t, out, "] love\n")
	assert.Contains(t, out, "] Col 3:4\n")
}

func TestFormatBookmarks(t *testing.T) {
	var buf strings.Builder
	FormatBookmarks(&buf, nil)
	assert.Equal(t, " No bookmarks saved.\n", buf.String())

	long := types.Reference{Book: "Ruth", Chapter: 1, Verse: 16, Text: strings.Repeat("whither thou goest ", 10)}
	buf.Reset()
	FormatBookmarks(&buf, []types.Bookmark{{ID: 1, Reference: long, CreatedAt: time.Now()}})
	out := buf.String()
	assert.Contains(t, out, "Ruth 1:16")
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, long.Text)
	assert.Contains(t, out, "1 bookmark(s)")
}
