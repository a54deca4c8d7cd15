// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// lineList is the participle grammar for the verse part of a reference:
// "4", "2,4-6", "1 - 3, 9". Empty items ("2,,4") are tolerated and ignored.
//
//nolint:govet // participle grammar tags are not standard struct tags
type lineList struct {
	Items []*lineItem `parser:"@@? ( \",\" @@? )*"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type lineItem struct {
	Start string  `parser:"@Int"`
	End   *string `parser:"( \"-\" @Int )?"`
}

var lineListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[,\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var lineListParser = participle.MustBuild[lineList](
	participle.Lexer(lineListLexer),
	participle.Elide("Whitespace"),
)

// LineRange is an inclusive span of verse numbers. Single verses have
// Start == End.
type LineRange struct {
	Start, End int
}

// LineListError reports a verse list that cannot be expanded.
type LineListError struct {
	Input  string
	Reason string
}

func (e *LineListError) Error() string {
	return fmt.Sprintf("invalid verse list %q: %s", e.Input, e.Reason)
}

// ParseLineList parses a comma separated list of verse numbers and
// inclusive "start-end" ranges, in the order written.
func ParseLineList(s string) ([]LineRange, error) {
	parsed, err := lineListParser.ParseString("", s)
	if err != nil {
		return nil, &LineListError{Input: strings.TrimSpace(s), Reason: err.Error()}
	}

	ranges := make([]LineRange, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		start, err := verseNumber(it.Start)
		if err != nil {
			return nil, &LineListError{Input: strings.TrimSpace(s), Reason: err.Error()}
		}
		r := LineRange{Start: start, End: start}
		if it.End != nil {
			if r.End, err = verseNumber(*it.End); err != nil {
				return nil, &LineListError{Input: strings.TrimSpace(s), Reason: err.Error()}
			}
		}
		if r.Start > r.End {
			return nil, &LineListError{
				Input:  strings.TrimSpace(s),
				Reason: fmt.Sprintf("range %d-%d runs backwards", r.Start, r.End),
			}
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// verseNumber converts a run of digits. Numbers too large for an int
// saturate at math.MaxInt; no chapter is that long.
func verseNumber(digits string) (int, error) {
	n, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, nil
	}
	return n, err
}
