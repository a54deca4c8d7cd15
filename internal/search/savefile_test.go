// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bible-search/pkg/types"
)

func TestSavedSearchRoundTrip(t *testing.T) {
	results := []types.Reference{
		{Book: "John", Chapter: 3, Verse: 16, Text: "For God so loved the world."},
		{Book: "1John", Chapter: 4, Verse: 8, Text: "God is love."},
		{Book: "John", Chapter: 15, Verse: 12, Text: "That ye love one another."},
	}
	now := time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)

	s := NewSavedSearch("love", results, now)
	assert.Equal(t, "book", s.Kind)
	assert.Equal(t, []string{"John", "1John"}, s.Summary.Books)
	assert.Equal(t, 3, s.Summary.Total)

	path := filepath.Join(t.TempDir(), "love.yaml")
	require.NoError(t, WriteSavedSearch(path, s))

	got, err := ReadSavedSearch(path)
	require.NoError(t, err)
	assert.Equal(t, s, *got)
}

func TestReadSavedSearchErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadSavedSearch(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("query: [unterminated\n"), 0o644))
	_, err = ReadSavedSearch(bad)
	assert.ErrorContains(t, err, "parsing saved search")

	mismatch := filepath.Join(dir, "mismatch.yaml")
	require.NoError(t, os.WriteFile(mismatch, []byte("query: x\nresults: []\nsummary:\n  total: 2\n"), 0o644))
	_, err = ReadSavedSearch(mismatch)
	assert.ErrorContains(t, err, "does not match")
}
