// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Mode is the answer to "is this a book or a keyword?".
type Mode int

const (
	ModeCancel Mode = iota
	ModeBrowse
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeText:
		return "text"
	default:
		return "cancel"
	}
}

// ParseMode maps "browse"/"b" and "text"/"t" to a Mode. Anything else is
// ModeCancel.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "b", "browse", "book":
		return ModeBrowse
	case "t", "text", "keyword":
		return ModeText
	default:
		return ModeCancel
	}
}

// Chooser settles the two ambiguities a query can hit mid-search. The engine
// blocks on it; implementations decide whether that means asking a person.
type Chooser interface {
	// ChooseBook picks one of several candidate books for input. It returns
	// the 0-based index, or false to cancel the query.
	ChooseBook(input string, candidates []string) (int, bool)

	// ChooseMode decides whether a bare book-shaped query browses the book
	// or searches for the word.
	ChooseMode(book string) Mode
}

// TerminalChooser asks on a line-oriented terminal.
type TerminalChooser struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalChooser reads answers from in and writes prompts to out. Pass
// the same *bufio.Reader the caller reads commands from, otherwise buffered
// input is lost between the two readers.
func NewTerminalChooser(in *bufio.Reader, out io.Writer) *TerminalChooser {
	return &TerminalChooser{in: in, out: out}
}

// ChooseBook lists the candidates 1-indexed and keeps asking until it gets a
// number in range. Empty input, or end of input, cancels.
func (c *TerminalChooser) ChooseBook(input string, candidates []string) (int, bool) {
	fmt.Fprintf(c.out, "\n Your input '%s' matches multiple books:\n", input)
	for i, name := range candidates {
		fmt.Fprintf(c.out, "   %d. %s\n", i+1, name)
	}

	for {
		fmt.Fprintf(c.out, " Enter 1–%d to select the correct book: ", len(candidates))
		answer, ok := c.readLine()
		if !ok || answer == "" {
			fmt.Fprintln(c.out, " Cancelled. Please type a more specific book name next time.")
			return 0, false
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(c.out, " Please enter a valid number.")
			continue
		}
		if n < 1 || n > len(candidates) {
			fmt.Fprintln(c.out, " Invalid number. Try again.")
			continue
		}
		fmt.Fprintf(c.out, " Selected: %s\n\n", candidates[n-1])
		return n - 1, true
	}
}

// ChooseMode asks for 'b' or 't'. Any other answer cancels.
func (c *TerminalChooser) ChooseMode(book string) Mode {
	fmt.Fprintf(c.out, "\n '%s' could refer to a Bible book or a search keyword.\n", book)
	fmt.Fprint(c.out, " Type 'b' for Book search or 't' for Text search: ")
	answer, _ := c.readLine()
	switch strings.ToLower(answer) {
	case "b":
		return ModeBrowse
	case "t":
		return ModeText
	default:
		return ModeCancel
	}
}

// readLine returns the next trimmed line. It reports false only when the
// input is exhausted with nothing read.
func (c *TerminalChooser) readLine() (string, bool) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// PolicyChooser answers without interaction, for batch use.
type PolicyChooser struct {
	// Pick is the 1-based candidate to take when a book name is ambiguous.
	// Zero, or a value out of range, cancels.
	Pick int

	// Mode is the answer for bare book-shaped queries.
	Mode Mode

	// Out, when set, receives the same cancel line a terminal prints.
	Out io.Writer
}

// ChooseBook implements Chooser.
func (p PolicyChooser) ChooseBook(_ string, candidates []string) (int, bool) {
	if p.Pick < 1 || p.Pick > len(candidates) {
		if p.Out != nil {
			fmt.Fprintln(p.Out, " Cancelled. Please type a more specific book name next time.")
		}
		return 0, false
	}
	return p.Pick - 1, true
}

// ChooseMode implements Chooser.
func (p PolicyChooser) ChooseMode(string) Mode {
	return p.Mode
}
