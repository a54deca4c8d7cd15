// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search is the query engine: it classifies a free-form query,
// resolves partial book names, runs one of four search strategies over the
// corpus, and keeps the results in a Navigator for paging.
//
// Query shapes are tried in a fixed order; the first that matches wins:
//
//	Col 2:2,4-6   reference  (book, chapter, verse list)
//	Col 1         chapter
//	Col           book       (asks: browse the book, or search the word?)
//	anything else keyword    (case-insensitive substring, see Find)
package search

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"github.com/pdiddy/bible-search/internal/corpus"
	"github.com/pdiddy/bible-search/pkg/types"
)

// HistorySink receives queries worth remembering. Failures are logged and
// otherwise ignored.
type HistorySink interface {
	RecordSearch(ctx context.Context, query string) error
}

// Options holds the optional collaborators of an Engine.
type Options struct {
	// History receives recorded queries. Nil disables recording.
	History HistorySink

	// Policy decides when queries are recorded (default HistoryMatched).
	Policy types.HistoryPolicy

	// Logger receives diagnostics. Nil discards them.
	Logger *zerolog.Logger
}

// Engine dispatches queries against a corpus. It is not safe for concurrent
// use; each interactive session owns one Engine and one Navigator.
type Engine struct {
	corpus  *corpus.Corpus
	nav     *Navigator
	chooser Chooser
	history HistorySink
	policy  types.HistoryPolicy
	out     io.Writer
	log     zerolog.Logger
}

// NewEngine wires an Engine. User-facing messages go to out; nav receives
// every result set.
func NewEngine(c *corpus.Corpus, nav *Navigator, chooser Chooser, out io.Writer, opts Options) *Engine {
	e := &Engine{
		corpus:  c,
		nav:     nav,
		chooser: chooser,
		history: opts.History,
		policy:  opts.Policy,
		out:     out,
		log:     zerolog.Nop(),
	}
	if !e.policy.Valid() {
		e.policy = types.HistoryMatched
	}
	if opts.Logger != nil {
		e.log = opts.Logger.With().Str("component", "search").Logger()
	}
	return e
}

// Navigator returns the navigator the engine fills.
func (e *Engine) Navigator() *Navigator {
	return e.nav
}

// bookToken is the book part shared by every shaped query: an optional
// leading 1-3, an optional space, then letters.
const bookToken = `([1-3]?\s?[A-Za-z]+)`

type rule struct {
	name    string
	pattern *regexp.Regexp
	run     func(e *Engine, ctx context.Context, query string, m []string)
}

// rules is evaluated top to bottom. The order is part of the contract: a
// looser earlier pattern would steal queries from a later strategy.
var rules = []rule{
	{"reference", regexp.MustCompile(`(?i)^` + bookToken + `\s+(\d+):([\d,\-\s]+)$`), (*Engine).referenceRule},
	{"chapter", regexp.MustCompile(`(?i)^` + bookToken + `\s+(\d+)$`), (*Engine).chapterRule},
	{"book", regexp.MustCompile(`(?i)^` + bookToken + `$`), (*Engine).bookRule},
	{"keyword", regexp.MustCompile(`(?s).*`), (*Engine).keywordRule},
}

// Classify returns the name of the rule a query reaches before any corpus
// lookup ("reference", "chapter", "book" or "keyword").
func Classify(query string) string {
	query = strings.TrimSpace(query)
	for _, r := range rules {
		if r.pattern.MatchString(query) {
			return r.name
		}
	}
	return "keyword"
}

// Dispatch runs one query. The previous result set is always discarded;
// on a non-empty result the first reference is shown.
func (e *Engine) Dispatch(ctx context.Context, query string) {
	fmt.Fprintf(e.out, "\n Searching for: %s\n", query)
	e.nav.Reset()

	query = strings.TrimSpace(query)
	if query == "" {
		fmt.Fprintln(e.out, " Usage: search <keyword/book/ref>")
		return
	}

	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		e.log.Debug().Str("rule", r.name).Str("query", query).Msg("query classified")
		r.run(e, ctx, query, m)
		break
	}

	if e.nav.Len() > 0 {
		e.nav.ShowCurrent()
	}
}

func (e *Engine) referenceRule(ctx context.Context, query string, m []string) {
	if e.policy == types.HistoryRecognized {
		e.record(ctx, query)
	}
	book, ok := e.resolveBook(normalizeBook(m[1]))
	if !ok {
		return
	}
	refs := e.referenceSearch(book, m[2], m[3])
	e.finish(ctx, query, "reference", refs)
}

func (e *Engine) chapterRule(ctx context.Context, query string, m []string) {
	if e.policy == types.HistoryRecognized {
		e.record(ctx, query)
	}
	book, ok := e.resolveBook(normalizeBook(m[1]))
	if !ok {
		return
	}
	refs := e.chapterSearch(book, m[2])
	e.finish(ctx, query, "chapter", refs)
}

// bookRule handles a bare book-shaped token. The book is resolved first;
// with no candidate, or a cancelled pick, the token is just a keyword.
// Otherwise the chooser decides whether to browse the book or search the word.
func (e *Engine) bookRule(ctx context.Context, query string, m []string) {
	name := normalizeBook(m[1])
	candidates := e.corpus.BooksWithPrefix(name)
	if len(candidates) == 0 {
		fmt.Fprintf(e.out, " No book found for '%s'. Try typing more letters.\n", strings.ToLower(name))
		e.keywordRule(ctx, query, nil)
		return
	}
	book, ok := e.pickBook(name, candidates)
	if !ok {
		e.keywordRule(ctx, query, nil)
		return
	}

	switch e.chooser.ChooseMode(name) {
	case ModeBrowse:
		if e.policy == types.HistoryRecognized {
			e.record(ctx, query)
		}
		refs := e.bookSearch(book)
		e.finish(ctx, query, "book", refs)
	case ModeText:
		e.keywordRule(ctx, query, nil)
	default:
		fmt.Fprintln(e.out, " Invalid choice. Cancelled search.")
	}
}

func (e *Engine) keywordRule(ctx context.Context, query string, _ []string) {
	refs := e.keywordSearch(query)
	if len(refs) == 0 {
		fmt.Fprintln(e.out, " No matching verses found.")
		return
	}
	e.record(ctx, query)
	fmt.Fprintf(e.out, " Found %d result(s). Type 'next' or 'prev' to navigate.\n", len(refs))
	e.nav.Replace(refs)
}

// finish installs the results of a reference, chapter or book search and
// records the query under the matched policy.
func (e *Engine) finish(ctx context.Context, query, strategy string, refs []types.Reference) {
	e.log.Debug().Str("strategy", strategy).Int("results", len(refs)).Msg("search finished")
	if len(refs) == 0 {
		return
	}
	if e.policy == types.HistoryMatched {
		e.record(ctx, query)
	}
	e.nav.Replace(refs)
}

func (e *Engine) record(ctx context.Context, query string) {
	if e.history == nil {
		return
	}
	if err := e.history.RecordSearch(ctx, query); err != nil {
		e.log.Warn().Err(err).Str("query", query).Msg("recording search history failed")
	}
}

// referenceSearch expands a verse list inside one chapter. Verses that do
// not exist are skipped without comment.
func (e *Engine) referenceSearch(book, chapterStr, verseList string) []types.Reference {
	ch, ok := e.chapter(book, chapterStr)
	if !ok {
		return nil
	}

	ranges, err := ParseLineList(verseList)
	if err != nil {
		fmt.Fprintf(e.out, " Error processing reference: %v\n", err)
		return nil
	}

	last := 0
	for _, v := range ch.Verses {
		last = max(last, v.Number)
	}

	var refs []types.Reference
	for _, r := range ranges {
		for n := r.Start; n <= min(r.End, last); n++ {
			if v, ok := ch.Verse(n); ok {
				refs = append(refs, types.Reference{Book: book, Chapter: ch.Number, Verse: v.Number, Text: v.Text})
			}
		}
	}

	if len(refs) == 0 {
		fmt.Fprintf(e.out, " Verse(s) not found in %s %d.\n", book, ch.Number)
		return nil
	}
	fmt.Fprintf(e.out, " Found %d verse(s). Type 'next' or 'prev' to navigate.\n", len(refs))
	return refs
}

func (e *Engine) chapterSearch(book, chapterStr string) []types.Reference {
	ch, ok := e.chapter(book, chapterStr)
	if !ok {
		return nil
	}

	refs := make([]types.Reference, 0, len(ch.Verses))
	for _, v := range ch.Verses {
		refs = append(refs, types.Reference{Book: book, Chapter: ch.Number, Verse: v.Number, Text: v.Text})
	}

	if len(refs) == 0 {
		fmt.Fprintf(e.out, " No verses found in %s %d.\n", book, ch.Number)
		return nil
	}
	fmt.Fprintf(e.out, " Showing all %d verses from %s %d.\n", len(refs), book, ch.Number)
	return refs
}

func (e *Engine) bookSearch(name string) []types.Reference {
	b, ok := e.corpus.Book(name)
	if !ok {
		return nil
	}

	refs := make([]types.Reference, 0, b.VerseCount())
	for _, ch := range b.Chapters {
		for _, v := range ch.Verses {
			refs = append(refs, types.Reference{Book: b.Name, Chapter: ch.Number, Verse: v.Number, Text: v.Text})
		}
	}

	if len(refs) == 0 {
		fmt.Fprintf(e.out, " No verses found in %s.\n", b.Name)
		return nil
	}
	fmt.Fprintf(e.out, " Showing all %d verses from %s.\n", len(refs), b.Name)
	return refs
}

// keywordSearch scans every verse in natural order.
func (e *Engine) keywordSearch(query string) []types.Reference {
	var refs []types.Reference
	e.corpus.Walk(func(r types.Reference) bool {
		if Find(r.Text, query) != NotFound {
			refs = append(refs, r)
		}
		return true
	})
	return refs
}

// chapter looks up a chapter by its digits as typed, reporting when absent.
func (e *Engine) chapter(book, chapterStr string) (*corpus.Chapter, bool) {
	b, ok := e.corpus.Book(book)
	if !ok {
		return nil, false
	}
	n, err := strconv.Atoi(chapterStr)
	if err == nil {
		if ch, found := b.Chapter(n); found {
			return ch, true
		}
	}
	fmt.Fprintf(e.out, " Chapter %s not found in %s.\n", chapterStr, book)
	return nil, false
}

var singleVerse = regexp.MustCompile(`(?i)^` + bookToken + `\s+(\d+):(\d+)$`)

// ResolveVerse maps "Book C:V" to one verse. The book may be partial and is
// resolved the same way a reference query resolves it.
func (e *Engine) ResolveVerse(input string) (types.Reference, bool) {
	m := singleVerse.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return types.Reference{}, false
	}
	book, ok := e.resolveBook(normalizeBook(m[1]))
	if !ok {
		return types.Reference{}, false
	}
	ch, err := strconv.Atoi(m[2])
	if err != nil {
		return types.Reference{}, false
	}
	v, err := strconv.Atoi(m[3])
	if err != nil {
		return types.Reference{}, false
	}
	return e.corpus.Lookup(book, ch, v)
}

// resolveBook maps a partial book name to exactly one corpus book.
func (e *Engine) resolveBook(input string) (string, bool) {
	return e.pickBook(input, e.corpus.BooksWithPrefix(input))
}

func (e *Engine) pickBook(input string, candidates []string) (string, bool) {
	short := strings.ToLower(input)
	switch len(candidates) {
	case 0:
		fmt.Fprintf(e.out, " No book found for '%s'. Try typing more letters.\n", short)
		if hints := e.suggestBooks(short); len(hints) > 0 {
			fmt.Fprintf(e.out, " Did you mean: %s?\n", strings.Join(hints, ", "))
		}
		return "", false
	case 1:
		return candidates[0], true
	}

	i, ok := e.chooser.ChooseBook(short, candidates)
	if !ok || i < 0 || i >= len(candidates) {
		e.log.Debug().Str("input", short).Int("candidates", len(candidates)).Msg("book choice cancelled")
		return "", false
	}
	return candidates[i], true
}

const maxSuggestions = 3

// suggestBooks returns up to three book names that contain the letters of
// input in order. It only feeds the "did you mean" hint.
func (e *Engine) suggestBooks(input string) []string {
	books := e.corpus.Books()
	names := make([]string, len(books))
	for i, b := range books {
		names[i] = corpus.FoldName(b.Name)
	}

	matches := fuzzy.Find(corpus.FoldName(input), names)
	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, books[m.Index].Name)
	}
	return out
}

// normalizeBook capitalises the token and drops spaces: "1 john" -> "1john".
func normalizeBook(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return strings.ReplaceAll(string(r), " ", "")
}
