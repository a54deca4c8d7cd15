// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "unicode"

// NotFound is returned by Find when the pattern does not occur.
const NotFound = -1

// Find returns the rune offset of the leftmost case-insensitive occurrence of
// pattern in text, or NotFound. An empty pattern matches at 0.
//
// It is Boyer–Moore with the bad-character rule only: the pattern is aligned
// under the text, compared right to left, and on a mismatch the alignment
// advances by the skip value of the text rune under the pattern's last
// position.
func Find(text, pattern string) int {
	p := foldRunes(pattern)
	m := len(p)
	if m == 0 {
		return 0
	}
	t := foldRunes(text)
	n := len(t)

	skip := skipTable(p)

	for i := m - 1; i < n; {
		k := 0
		for k < m && p[m-1-k] == t[i-k] {
			k++
		}
		if k == m {
			return i - m + 1
		}
		if s, ok := skip[t[i]]; ok {
			i += s
		} else {
			i += m
		}
	}
	return NotFound
}

// skipTable maps every rune of p except the last to the distance from its
// rightmost occurrence to the end of p. Later indices overwrite earlier ones.
func skipTable(p []rune) map[rune]int {
	m := len(p)
	skip := make(map[rune]int, m)
	for i := 0; i < m-1; i++ {
		skip[p[i]] = m - 1 - i
	}
	return skip
}

func foldRunes(s string) []rune {
	r := []rune(s)
	for i, c := range r {
		r[i] = unicode.ToLower(c)
	}
	return r
}
