package search

import (
	"strings"
	"unicode"
)

// Span is a half-open byte range [Start, End) of a line.
type Span struct {
	Start int
	End   int
}

// Spans returns the non-overlapping ranges of line that match query under p,
// scanning left to right. Offsets always refer to the original line, even for
// the case-insensitive policy. An empty query yields no spans.
func (p Policy) Spans(query, line string) []Span {
	if query == "" {
		return nil
	}
	if p == CaseInsensitive {
		return foldedSpans(strings.ToLower(query), line)
	}
	return exactSpans(query, line, nil)
}

func exactSpans(query, line string, offsets []int) []Span {
	var spans []Span
	pos := 0
	for {
		i := strings.Index(line[pos:], query)
		if i < 0 {
			return spans
		}
		start, end := pos+i, pos+i+len(query)
		if offsets != nil {
			spans = append(spans, Span{Start: offsets[start], End: offsets[end]})
		} else {
			spans = append(spans, Span{Start: start, End: end})
		}
		pos = end
	}
}

// foldedSpans lowercases line rune by rune, the same mapping strings.ToLower
// applies, while recording where each lowered byte came from.
func foldedSpans(lowerQuery, line string) []Span {
	var lowered strings.Builder
	lowered.Grow(len(line))
	offsets := make([]int, 0, len(line)+1)

	// Invalid bytes range as U+FFFD, which is also what strings.ToLower emits.
	for i, r := range line {
		before := lowered.Len()
		lowered.WriteRune(unicode.ToLower(r))
		for range lowered.Len() - before {
			offsets = append(offsets, i)
		}
	}
	offsets = append(offsets, len(line))

	return exactSpans(lowerQuery, lowered.String(), offsets)
}
