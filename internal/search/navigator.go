// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"io"

	"github.com/pdiddy/bible-search/pkg/types"
)

// Navigator owns the most recent result set and a cursor into it. The
// cursor saturates at both ends; it never wraps.
type Navigator struct {
	out     io.Writer
	results []types.Reference
	cursor  int
}

// NewNavigator returns an empty Navigator that reports to out.
func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

// Reset drops the result set and parks the cursor at 0.
func (n *Navigator) Reset() {
	n.results = nil
	n.cursor = 0
}

// Replace installs refs as the result set, cursor at 0. The slice is copied.
func (n *Navigator) Replace(refs []types.Reference) {
	n.results = append([]types.Reference(nil), refs...)
	n.cursor = 0
}

// Len returns the size of the result set.
func (n *Navigator) Len() int {
	return len(n.results)
}

// Position returns the cursor. It is meaningless when Len is 0.
func (n *Navigator) Position() int {
	return n.cursor
}

// Current returns the reference under the cursor.
func (n *Navigator) Current() (types.Reference, bool) {
	if len(n.results) == 0 {
		return types.Reference{}, false
	}
	return n.results[n.cursor], true
}

// Results returns a copy of the result set.
func (n *Navigator) Results() []types.Reference {
	return append([]types.Reference(nil), n.results...)
}

// ShowCurrent prints the reference under the cursor with its "(i of N)"
// position.
func (n *Navigator) ShowCurrent() {
	ref, ok := n.Current()
	if !ok {
		fmt.Fprintln(n.out, "No active search results. Use 'search <keyword>' first.")
		return
	}
	fmt.Fprintf(n.out, "\n %s — %s\n", ref, ref.Text)
	fmt.Fprintf(n.out, "(%d of %d)\n", n.cursor+1, len(n.results))
}

// Next advances the cursor unless it is on the last result, then shows the
// current result.
func (n *Navigator) Next() {
	if len(n.results) == 0 {
		fmt.Fprintln(n.out, "No active search results. Use 'search' first.")
		return
	}
	if n.cursor < len(n.results)-1 {
		n.cursor++
	} else {
		fmt.Fprintln(n.out, " End of results reached.")
	}
	n.ShowCurrent()
}

// Prev moves the cursor back unless it is on the first result, then shows
// the current result.
func (n *Navigator) Prev() {
	if len(n.results) == 0 {
		fmt.Fprintln(n.out, "No active search results. Use 'search' first.")
		return
	}
	if n.cursor > 0 {
		n.cursor--
	} else {
		fmt.Fprintln(n.out, " You're at the first verse.")
	}
	n.ShowCurrent()
}
