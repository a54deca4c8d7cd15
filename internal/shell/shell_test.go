// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bible-search/internal/corpus"
	"github.com/pdiddy/bible-search/internal/library"
	"github.com/pdiddy/bible-search/internal/search"
	"github.com/pdiddy/bible-search/pkg/types"
)

const fixture = `Ruth 1:16 Whither thou goest, I will go.
Ruth 1:17 Where thou diest, will I die.
Colossians 3:4 When Christ, who is our life, shall appear.
John 3:16 For God so loved the world.
1John 4:8 He that loveth not knoweth not God; for God is love.
`

type session struct {
	shell *Shell
	store *library.Store
	out   *strings.Builder
}

// newSession builds a shell over the fixture corpus and a real store, reading
// its commands from input.
func newSession(t *testing.T, input string) *session {
	t.Helper()
	c, err := corpus.Parse(strings.NewReader(fixture))
	require.NoError(t, err)

	store, err := library.NewStore(types.LibraryConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	out := &strings.Builder{}
	in := bufio.NewReader(strings.NewReader(input))
	nav := search.NewNavigator(out)
	engine := search.NewEngine(c, nav, search.NewTerminalChooser(in, out), out, search.Options{History: store})

	sh := New(Config{
		In:      in,
		Out:     out,
		Engine:  engine,
		Corpus:  c,
		Library: store,
		Now:     func() time.Time { return time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC) },
	})
	return &session{shell: sh, store: store, out: out}
}

func TestRunExits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exit", "exit\nsearch love\n", " Exiting Bible Search App. Have a blessed day!\n"},
		{"quit upper case", "QUIT\n", " Exiting Bible Search App. Have a blessed day!\n"},
		{"end of input", "", "\n Program terminated. Have a blessed day!\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, tt.input)
			require.NoError(t, s.shell.Run(context.Background()))
			assert.True(t, strings.HasSuffix(s.out.String(), tt.want), s.out.String())
			assert.NotContains(t, s.out.String(), "Searching for")
		})
	}
}

func TestRunShowsMenu(t *testing.T) {
	s := newSession(t, "")
	require.NoError(t, s.shell.Run(context.Background()))
	assert.Contains(t, s.out.String(), "Welcome to the Bible Search and Study App!")
	assert.Contains(t, s.out.String(), "COMMANDS MENU")
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newSession(t, "search love\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.shell.Run(ctx), context.Canceled)
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	s := newSession(t, "search ruth 1")
	require.NoError(t, s.shell.Run(context.Background()))
	assert.Contains(t, s.out.String(), " Showing all 2 verses from Ruth 1.\n")
}

func TestExecuteRouting(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"unknown", "frobnicate", " Unknown command. Type 'help' for the available options.\n"},
		{"search usage", "search", " Usage: search <keyword/book/ref>\n"},
		{"search usage with spaces", "search    ", " Usage: search <keyword/book/ref>\n"},
		{"next on empty", "next", "No active search results. Use 'search' first.\n"},
		{"prev on empty", "PREV", "No active search results. Use 'search' first.\n"},
		{"bookmark with nothing current", "bookmark", " Usage: bookmark <Book> <Chapter:Verse>\n"},
		{"bookmark bad reference", "bookmark Ruth 9:9", " Invalid verse reference. Please check your input.\n"},
		{"bookmark unparseable", "bookmark nonsense", " Invalid verse reference. Please check your input.\n"},
		{"empty bookmarks", "bookmarks", "\n No bookmarks saved.\n"},
		{"empty history", "history", "\n No search history yet.\n"},
		{"blank line", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, "")
			require.NoError(t, s.shell.Execute(context.Background(), tt.line))
			assert.Equal(t, tt.want, s.out.String())
		})
	}
}

func TestExecuteHelp(t *testing.T) {
	s := newSession(t, "")
	require.NoError(t, s.shell.Execute(context.Background(), "help"))
	assert.Contains(t, s.out.String(), "COMMANDS MENU")
	assert.NotContains(t, s.out.String(), "Welcome")

	s.out.Reset()
	require.NoError(t, s.shell.Execute(context.Background(), "home"))
	assert.Contains(t, s.out.String(), "Welcome")
}

func TestSearchAndNavigate(t *testing.T) {
	s := newSession(t, "")
	ctx := context.Background()

	require.NoError(t, s.shell.Execute(ctx, "search ruth 1"))
	assert.Contains(t, s.out.String(), "\n Ruth 1:16 — Whither thou goest, I will go.\n(1 of 2)\n")

	s.out.Reset()
	require.NoError(t, s.shell.Execute(ctx, "next"))
	assert.Contains(t, s.out.String(), "(2 of 2)")

	s.out.Reset()
	require.NoError(t, s.shell.Execute(ctx, "next"))
	assert.Contains(t, s.out.String(), " End of results reached.\n")
	assert.Contains(t, s.out.String(), "(2 of 2)")

	s.out.Reset()
	require.NoError(t, s.shell.Execute(ctx, "prev"))
	assert.Contains(t, s.out.String(), "(1 of 2)")
}

func TestSearchRecordsHistory(t *testing.T) {
	s := newSession(t, "")
	ctx := context.Background()

	require.NoError(t, s.shell.Execute(ctx, "search loved"))
	require.NoError(t, s.shell.Execute(ctx, "search zzzzqqq"))
	require.NoError(t, s.shell.Execute(ctx, "search Col 3:4"))

	s.out.Reset()
	require.NoError(t, s.shell.Execute(ctx, "history"))
	out := s.out.String()
	assert.Contains(t, out, "] loved\n")
	assert.Contains(t, out, "] Col 3:4\n")
	assert.NotContains(t, out, "zzzzqqq")

	s.out.Reset()
	require.NoError(t, s.shell.Execute(ctx, "history 1"))
	assert.NotContains(t, s.out.String(), "loved")
	assert.Contains(t, s.out.String(), "Col 3:4")
}

func TestHistoryDefaultLimit(t *testing.T) {
	s := newSession(t, "")
	s.shell.historyLimit = 1
	ctx := context.Background()

	require.NoError(t, s.shell.Execute(ctx, "search loved"))
	require.NoError(t, s.shell.Execute(ctx, "search Col 3:4"))

	s.out.Reset()
	require.NoError(t, s.shell.Execute(ctx, "history"))
	assert.NotContains(t, s.out.String(), "loved")

	s.out.Reset()
	require.NoError(t, s.shell.Execute(ctx, "history 0"))
	assert.Contains(t, s.out.String(), "loved")
}

func TestBookmarkCommands(t *testing.T) {
	// "john" also matches 1John, so the chooser reads a pick from the
	// shell's own input.
	s := newSession(t, "1\n")
	ctx := context.Background()

	require.NoError(t, s.shell.Execute(ctx, "bookmark john 3:16"))
	assert.Contains(t, s.out.String(), " Selected: John\n")
	assert.True(t, strings.HasSuffix(s.out.String(), " Bookmarked: John 3:16\n"))

	require.NoError(t, s.shell.Execute(ctx, "search ruth 1"))
	require.NoError(t, s.shell.Execute(ctx, "next"))
	s.out.Reset()
	require.NoError(t, s.shell.Execute(ctx, "bookmark"))
	assert.Equal(t, " Bookmarked: Ruth 1:17\n", s.out.String())

	s.out.Reset()
	require.NoError(t, s.shell.Execute(ctx, "bookmark ruth 1:17"))
	assert.Equal(t, " Ruth 1:17 is already in your bookmarks.\n", s.out.String())

	all, err := s.store.Bookmarks(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Where thou diest, will I die.", all[1].Reference.Text)

	s.out.Reset()
	require.NoError(t, s.shell.Execute(ctx, "bookmarks"))
	assert.Contains(t, s.out.String(), "John 3:16")
	assert.Contains(t, s.out.String(), "2 bookmark(s)")
}

func TestBookmarkStoreFailure(t *testing.T) {
	s := newSession(t, "")
	s.shell.lib = failingLibrary{}

	require.NoError(t, s.shell.Execute(context.Background(), "bookmark Ruth 1:16"))
	assert.Equal(t, " Could not save the bookmark.\n", s.out.String())
}

func TestVerseOfDay(t *testing.T) {
	s := newSession(t, "")
	require.NoError(t, s.shell.Execute(context.Background(), "verseofday"))
	first := s.out.String()
	assert.Contains(t, first, "\n Verse of the Day (October 15, 2026)\n")

	s.out.Reset()
	require.NoError(t, s.shell.Execute(context.Background(), "verseofday"))
	assert.Equal(t, first, s.out.String())
}

func TestVerseOfDayReadsClockOnce(t *testing.T) {
	s := newSession(t, "")
	late := time.Date(2026, 10, 15, 23, 59, 59, 0, time.UTC)
	calls := 0
	s.shell.now = func() time.Time {
		calls++
		if calls == 1 {
			return late
		}
		return late.Add(time.Second)
	}

	require.NoError(t, s.shell.Execute(context.Background(), "verseofday"))
	assert.Equal(t, 1, calls)
	want, ok := s.shell.corpus.VerseOfDay(late)
	require.True(t, ok)
	assert.Equal(t, "\n Verse of the Day (October 15, 2026)\n "+want.String()+" — "+want.Text+"\n", s.out.String())
}

type failingLibrary struct{}

func (failingLibrary) History(context.Context, int) ([]types.HistoryEntry, error) {
	return nil, errors.New("disk full")
}

func (failingLibrary) AddBookmark(context.Context, types.Reference) (types.Bookmark, error) {
	return types.Bookmark{}, errors.New("disk full")
}

func (failingLibrary) Bookmarks(context.Context) ([]types.Bookmark, error) {
	return nil, errors.New("disk full")
}
