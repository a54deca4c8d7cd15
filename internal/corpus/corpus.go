// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus holds the read-only book → chapter → verse hierarchy the
// query engine searches, and loads it from a plain text file.
//
// A Corpus keeps its books, chapters and verses in file order ("natural
// order"); every walk the engine performs follows that order. Book names are
// indexed in a radix tree keyed by their folded form so prefix resolution
// does not scan the whole book list.
package corpus

import (
	"sort"
	"strings"

	"github.com/armon/go-radix"

	"github.com/pdiddy/bible-search/pkg/types"
)

// Verse is a single numbered line of text.
type Verse struct {
	Number int
	Text   string
}

// Chapter is an ordered list of verses.
type Chapter struct {
	Number int
	Verses []Verse
	index  map[int]int
}

// Verse returns the verse with the given number.
func (c *Chapter) Verse(n int) (Verse, bool) {
	i, ok := c.index[n]
	if !ok {
		return Verse{}, false
	}
	return c.Verses[i], true
}

// Book is an ordered list of chapters.
type Book struct {
	Name     string
	Chapters []*Chapter
	index    map[int]int
}

// Chapter returns the chapter with the given number.
func (b *Book) Chapter(n int) (*Chapter, bool) {
	i, ok := b.index[n]
	if !ok {
		return nil, false
	}
	return b.Chapters[i], true
}

// VerseCount returns the number of verses across all chapters.
func (b *Book) VerseCount() int {
	n := 0
	for _, ch := range b.Chapters {
		n += len(ch.Verses)
	}
	return n
}

// Corpus is the full hierarchy. It is built once by a Builder and never
// modified afterwards, so it is safe to share between readers.
type Corpus struct {
	books  []*Book
	byName map[string]int
	names  *radix.Tree // folded name, and numberless alias -> []int book positions
	verses int
}

// Books returns the books in natural order. Callers must not modify the slice.
func (c *Corpus) Books() []*Book {
	return c.books
}

// Book returns the book with exactly the given name.
func (c *Corpus) Book(name string) (*Book, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return c.books[i], true
}

// Lookup returns the verse at book/chapter/verse as a Reference.
func (c *Corpus) Lookup(book string, chapter, verse int) (types.Reference, bool) {
	b, ok := c.Book(book)
	if !ok {
		return types.Reference{}, false
	}
	ch, ok := b.Chapter(chapter)
	if !ok {
		return types.Reference{}, false
	}
	v, ok := ch.Verse(verse)
	if !ok {
		return types.Reference{}, false
	}
	return types.Reference{Book: b.Name, Chapter: ch.Number, Verse: v.Number, Text: v.Text}, true
}

// Len returns the total number of verses.
func (c *Corpus) Len() int {
	return c.verses
}

// Walk calls fn for every verse in natural order until fn returns false.
func (c *Corpus) Walk(fn func(types.Reference) bool) {
	for _, b := range c.books {
		for _, ch := range b.Chapters {
			for _, v := range ch.Verses {
				if !fn(types.Reference{Book: b.Name, Chapter: ch.Number, Verse: v.Number, Text: v.Text}) {
					return
				}
			}
		}
	}
}

// BooksWithPrefix returns, in natural order, every book whose folded name
// starts with the folded prefix. Folding lower-cases and drops spaces, so
// "1 john" and "1john" both match a book named "1John" or "1 John".
// Numbered books are also reachable without their number: "john" matches
// "John", "1John", "2John" and "3John".
func (c *Corpus) BooksWithPrefix(prefix string) []string {
	seen := make(map[int]bool)
	var positions []int
	c.names.WalkPrefix(FoldName(prefix), func(_ string, v interface{}) bool {
		for _, p := range v.([]int) {
			if !seen[p] {
				seen[p] = true
				positions = append(positions, p)
			}
		}
		return false
	})
	sort.Ints(positions)

	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = c.books[p].Name
	}
	return out
}

// FoldName is the case- and space-insensitive form used by the book index.
func FoldName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

func (c *Corpus) index(key string, pos int) {
	var positions []int
	if v, found := c.names.Get(key); found {
		positions = v.([]int)
	}
	c.names.Insert(key, append(positions, pos))
}

// Builder accumulates verses in insertion order and produces a Corpus.
type Builder struct {
	c *Corpus
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{c: &Corpus{
		byName: make(map[string]int),
		names:  radix.New(),
	}}
}

// Add appends a verse. A repeated book/chapter/verse replaces the earlier
// text in place and keeps its original position.
func (bd *Builder) Add(book string, chapter, verse int, text string) {
	c := bd.c
	bi, ok := c.byName[book]
	if !ok {
		bi = len(c.books)
		c.books = append(c.books, &Book{Name: book, index: make(map[int]int)})
		c.byName[book] = bi

		key := FoldName(book)
		c.index(key, bi)
		if alias := strings.TrimLeft(key, "0123456789"); alias != key && alias != "" {
			c.index(alias, bi)
		}
	}
	b := c.books[bi]

	ci, ok := b.index[chapter]
	if !ok {
		ci = len(b.Chapters)
		b.Chapters = append(b.Chapters, &Chapter{Number: chapter, index: make(map[int]int)})
		b.index[chapter] = ci
	}
	ch := b.Chapters[ci]

	if vi, ok := ch.index[verse]; ok {
		ch.Verses[vi].Text = text
		return
	}
	ch.index[verse] = len(ch.Verses)
	ch.Verses = append(ch.Verses, Verse{Number: verse, Text: text})
	c.verses++
}

// Corpus returns the built corpus. The Builder must not be used afterwards.
func (bd *Builder) Corpus() *Corpus {
	c := bd.c
	bd.c = nil
	return c
}
