// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HistoryEntry is one successfully dispatched search query.
type HistoryEntry struct {
	// ID is the store-assigned row identifier.
	ID int64 `json:"id" yaml:"id"`

	// Query is the raw query string as the user typed it.
	Query string `json:"query" yaml:"query"`

	// SearchedAt is when the query was recorded.
	SearchedAt time.Time `json:"searched_at" yaml:"searched_at"`
}

// Bookmark is a saved verse. A reference can be bookmarked once.
type Bookmark struct {
	ID        int64     `json:"id" yaml:"id"`
	Reference Reference `json:"reference" yaml:"reference"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
