// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bible-search/pkg/types"
)

// SavedSearch is the on-disk form of a query and its results, so a result
// list can be reopened without the corpus.
type SavedSearch struct {
	Query   string            `yaml:"query"`
	Kind    string            `yaml:"kind"`
	Results []types.Reference `yaml:"results"`
	Summary SavedSummary      `yaml:"summary"`
}

// SavedSummary records result statistics and when the search ran.
type SavedSummary struct {
	Total     int       `yaml:"total"`
	Books     []string  `yaml:"books,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// NewSavedSearch builds a SavedSearch for query, listing each book the
// results touch once, in result order.
func NewSavedSearch(query string, results []types.Reference, now time.Time) SavedSearch {
	var books []string
	seen := make(map[string]bool)
	for _, r := range results {
		if !seen[r.Book] {
			seen[r.Book] = true
			books = append(books, r.Book)
		}
	}
	return SavedSearch{
		Query:   query,
		Kind:    Classify(query),
		Results: results,
		Summary: SavedSummary{Total: len(results), Books: books, Timestamp: now.UTC()},
	}
}

// WriteSavedSearch writes s to path as YAML.
func WriteSavedSearch(path string, s SavedSearch) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling saved search: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSavedSearch loads a file written by WriteSavedSearch.
func ReadSavedSearch(path string) (*SavedSearch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading saved search: %w", err)
	}
	var s SavedSearch
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing saved search: %w", err)
	}
	if s.Summary.Total != len(s.Results) {
		return nil, fmt.Errorf("parsing saved search: summary total %d does not match %d results", s.Summary.Total, len(s.Results))
	}
	return &s, nil
}
