// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportEntry is one bookmark as written to bookmarks.yaml / bookmarks.json.
type ExportEntry struct {
	Reference string `json:"reference" yaml:"reference"`
	Book      string `json:"book" yaml:"book"`
	Chapter   int    `json:"chapter" yaml:"chapter"`
	Verse     int    `json:"verse" yaml:"verse"`
	Text      string `json:"text" yaml:"text"`
	SavedAt   string `json:"saved_at" yaml:"saved_at"`
}

// ExportYAML writes every bookmark to dataDir/bookmarks.yaml and returns
// the path.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dataDir, "bookmarks.yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes every bookmark to dataDir/bookmarks.json and returns
// the path.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.dataDir, "bookmarks.json")
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportEntry, error) {
	bookmarks, err := s.Bookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(bookmarks))
	for i, b := range bookmarks {
		entries[i] = ExportEntry{
			Reference: b.Reference.String(),
			Book:      b.Reference.Book,
			Chapter:   b.Reference.Chapter,
			Verse:     b.Reference.Verse,
			Text:      b.Reference.Text,
			SavedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return entries, nil
}
