// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pdiddy/bible-search/pkg/types"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	textWidth  = 60
)

// FormatHistory writes entries as a numbered, timestamped list.
func FormatHistory(w io.Writer, entries []types.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, " No search history yet.")
		return
	}

	fmt.Fprintln(w, " Search history:")
	for i, e := range entries {
		fmt.Fprintf(w, "  %3d. [%s] %s\n", i+1, e.SearchedAt.Local().Format(timeLayout), e.Query)
	}
}

// FormatBookmarks writes bookmarks as a table with the verse text cut to a
// fixed display width.
func FormatBookmarks(w io.Writer, bookmarks []types.Bookmark) {
	if len(bookmarks) == 0 {
		fmt.Fprintln(w, " No bookmarks saved.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-22s  %-*s  %s\n", "#", "Reference", textWidth, "Text", "Saved")
	fmt.Fprintln(w, strings.Repeat("-", 4+2+22+2+textWidth+2+19))
	for i, b := range bookmarks {
		ref := runewidth.Truncate(b.Reference.String(), 22, "...")
		text := runewidth.FillRight(runewidth.Truncate(b.Reference.Text, textWidth, "..."), textWidth)
		fmt.Fprintf(w, "%-4d  %-22s  %s  %s\n", i+1, ref, text, b.CreatedAt.Local().Format(timeLayout))
	}
	fmt.Fprintf(w, "\n%d bookmark(s)\n", len(bookmarks))
}
