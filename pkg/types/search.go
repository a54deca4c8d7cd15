// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for bible-search: the
// Reference every search strategy produces, the records kept by the library
// store and the configuration tree decoded by viper.
package types

import "fmt"

// Reference is a resolved verse address paired with its text. Every search
// strategy produces References; they are never modified once created.
type Reference struct {
	// Book is the exact book key from the corpus (e.g. "Colossians", "1John").
	Book string `json:"book" yaml:"book"`

	// Chapter is the 1-based chapter number.
	Chapter int `json:"chapter" yaml:"chapter"`

	// Verse is the 1-based verse number.
	Verse int `json:"verse" yaml:"verse"`

	// Text is the verse text as loaded from the corpus.
	Text string `json:"text" yaml:"text"`
}

// String renders the address part of the reference as "Book C:V".
func (r Reference) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}
