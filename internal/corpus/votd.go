// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"math/rand/v2"
	"time"

	"github.com/pdiddy/bible-search/pkg/types"
)

// VerseOfDay picks one verse for the calendar day of t. The same day always
// yields the same verse for the same corpus. It returns false for an empty
// corpus.
func (c *Corpus) VerseOfDay(t time.Time) (types.Reference, bool) {
	if c.verses == 0 {
		return types.Reference{}, false
	}
	y, m, d := t.Date()
	seed := uint64(y)*10000 + uint64(m)*100 + uint64(d)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return c.At(rng.IntN(c.verses))
}

// At returns the n-th verse (0-based) in natural order.
func (c *Corpus) At(n int) (types.Reference, bool) {
	if n < 0 || n >= c.verses {
		return types.Reference{}, false
	}
	for _, b := range c.books {
		for _, ch := range b.Chapters {
			if n < len(ch.Verses) {
				v := ch.Verses[n]
				return types.Reference{Book: b.Name, Chapter: ch.Number, Verse: v.Number, Text: v.Text}, true
			}
			n -= len(ch.Verses)
		}
	}
	return types.Reference{}, false
}
