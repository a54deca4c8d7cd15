// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// versePattern matches "Book C:V text". The book may carry a leading
// number and spaces ("1 John", "Song of Solomon").
var versePattern = regexp.MustCompile(`^(\S.*?)\s+(\d+):(\d+)\s+(.+)$`)

// ParseError reports a line of the corpus file that is not a verse.
type ParseError struct {
	Path    string // file path, empty for readers
	Line    int    // 1-based line number
	Message string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse corpus at %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("failed to parse corpus at line %d: %s", e.Line, e.Message)
}

// Load reads a corpus text file. See Parse for the format.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return c, nil
}

// Parse reads one verse per line in the form "Book C:V text". Blank lines
// and lines starting with '#' are ignored. Books, chapters and verses keep
// the order in which they first appear.
func Parse(r io.Reader) (*Corpus, error) {
	b := NewBuilder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := versePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("expected \"Book C:V text\", got %q", truncate(line, 40))}
		}

		chapter, err := strconv.Atoi(m[2])
		if err != nil || chapter <= 0 {
			return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("invalid chapter %q", m[2])}
		}
		verse, err := strconv.Atoi(m[3])
		if err != nil || verse <= 0 {
			return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("invalid verse %q", m[3])}
		}

		b.Add(strings.TrimSpace(m[1]), chapter, verse, strings.TrimSpace(m[4]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	return b.Corpus(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
