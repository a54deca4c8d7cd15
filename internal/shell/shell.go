// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell implements the interactive command loop: it reads one
// command per line, routes searches to the query engine and serves the
// navigation, bookmark, history and verse-of-the-day commands.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/bible-search/internal/corpus"
	"github.com/pdiddy/bible-search/internal/library"
	"github.com/pdiddy/bible-search/internal/search"
	"github.com/pdiddy/bible-search/pkg/types"
)

// Library is the persistence the shell reads and writes.
type Library interface {
	History(ctx context.Context, limit int) ([]types.HistoryEntry, error)
	AddBookmark(ctx context.Context, ref types.Reference) (types.Bookmark, error)
	Bookmarks(ctx context.Context) ([]types.Bookmark, error)
}

// Config wires a Shell. In must be the same reader the engine's chooser
// prompts on, so that both consume one input stream.
type Config struct {
	In      *bufio.Reader
	Out     io.Writer
	Engine  *search.Engine
	Corpus  *corpus.Corpus
	Library Library

	// HistoryLimit caps a bare "history" listing; zero lists everything.
	HistoryLimit int

	Logger *zerolog.Logger
	Now    func() time.Time
}

// Shell is one interactive session.
type Shell struct {
	in           *bufio.Reader
	out          io.Writer
	engine       *search.Engine
	nav          *search.Navigator
	corpus       *corpus.Corpus
	lib          Library
	historyLimit int
	log          zerolog.Logger
	now          func() time.Time
}

// New creates a Shell from cfg.
func New(cfg Config) *Shell {
	s := &Shell{
		in:           cfg.In,
		out:          cfg.Out,
		engine:       cfg.Engine,
		nav:          cfg.Engine.Navigator(),
		corpus:       cfg.Corpus,
		lib:          cfg.Library,
		historyLimit: cfg.HistoryLimit,
		log:          zerolog.Nop(),
		now:          cfg.Now,
	}
	if cfg.Logger != nil {
		s.log = cfg.Logger.With().Str("component", "shell").Logger()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// errExit ends the loop without error.
var errExit = errors.New("exit")

type command struct {
	name string
	run  func(s *Shell, ctx context.Context, args string) error
}

var commands = []command{
	{"search", (*Shell).search},
	{"next", func(s *Shell, _ context.Context, _ string) error { s.nav.Next(); return nil }},
	{"prev", func(s *Shell, _ context.Context, _ string) error { s.nav.Prev(); return nil }},
	{"bookmark", (*Shell).bookmark},
	{"bookmarks", (*Shell).bookmarks},
	{"history", (*Shell).history},
	{"verseofday", (*Shell).verseOfDay},
	{"home", (*Shell).home},
	{"help", func(s *Shell, _ context.Context, _ string) error { s.menu(); return nil }},
	{"exit", (*Shell).exit},
	{"quit", (*Shell).exit},
}

// Run prints the welcome screen and serves commands until exit, end of
// input or cancellation of ctx.
func (s *Shell) Run(ctx context.Context) error {
	s.banner()
	s.menu()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, "\n> ")
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading command: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(s.out, "\n Program terminated. Have a blessed day!")
			return nil
		}

		if err := s.Execute(ctx, line); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

// Execute runs a single command line. Blank lines are ignored.
func (s *Shell) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	name, args, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	args = strings.TrimSpace(args)

	for _, c := range commands {
		if c.name == name {
			s.log.Debug().Str("command", name).Msg("dispatching command")
			return c.run(s, ctx, args)
		}
	}
	fmt.Fprintln(s.out, " Unknown command. Type 'help' for the available options.")
	return nil
}

func (s *Shell) search(ctx context.Context, query string) error {
	if query == "" {
		fmt.Fprintln(s.out, " Usage: search <keyword/book/ref>")
		return nil
	}
	s.engine.Dispatch(ctx, query)
	return nil
}

// bookmark saves the verse named in args, or the current result when args
// is empty.
func (s *Shell) bookmark(ctx context.Context, args string) error {
	var (
		ref types.Reference
		ok  bool
	)
	if args == "" {
		if ref, ok = s.nav.Current(); !ok {
			fmt.Fprintln(s.out, " Usage: bookmark <Book> <Chapter:Verse>")
			return nil
		}
	} else if ref, ok = s.engine.ResolveVerse(args); !ok {
		fmt.Fprintln(s.out, " Invalid verse reference. Please check your input.")
		return nil
	}

	if _, err := s.lib.AddBookmark(ctx, ref); err != nil {
		if errors.Is(err, library.ErrDuplicate) {
			fmt.Fprintf(s.out, " %s is already in your bookmarks.\n", ref)
			return nil
		}
		s.log.Error().Err(err).Str("reference", ref.String()).Msg("saving bookmark failed")
		fmt.Fprintln(s.out, " Could not save the bookmark.")
		return nil
	}
	fmt.Fprintf(s.out, " Bookmarked: %s\n", ref)
	return nil
}

func (s *Shell) bookmarks(ctx context.Context, _ string) error {
	all, err := s.lib.Bookmarks(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing bookmarks failed")
		fmt.Fprintln(s.out, " Could not load bookmarks.")
		return nil
	}
	fmt.Fprintln(s.out)
	library.FormatBookmarks(s.out, all)
	return nil
}

// history lists the last n searches; without n it uses the configured limit.
func (s *Shell) history(ctx context.Context, args string) error {
	limit := s.historyLimit
	if n, err := strconv.Atoi(args); err == nil && n >= 0 {
		limit = n
	}

	entries, err := s.lib.History(ctx, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("listing history failed")
		fmt.Fprintln(s.out, " Could not load search history.")
		return nil
	}
	fmt.Fprintln(s.out)
	library.FormatHistory(s.out, entries)
	return nil
}

func (s *Shell) verseOfDay(_ context.Context, _ string) error {
	today := s.now()
	ref, ok := s.corpus.VerseOfDay(today)
	if !ok {
		fmt.Fprintln(s.out, " No verses loaded.")
		return nil
	}
	fmt.Fprintf(s.out, "\n Verse of the Day (%s)\n", today.Format("January 2, 2006"))
	fmt.Fprintf(s.out, " %s — %s\n", ref, ref.Text)
	return nil
}

func (s *Shell) home(_ context.Context, _ string) error {
	s.banner()
	s.menu()
	return nil
}

func (s *Shell) exit(_ context.Context, _ string) error {
	fmt.Fprintln(s.out, " Exiting Bible Search App. Have a blessed day!")
	return errExit
}
