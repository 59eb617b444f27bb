package search

import "strings"

// Policy selects how a candidate line is compared with the query.
type Policy int

const (
	// CaseSensitive matches exact substrings.
	CaseSensitive Policy = iota
	// CaseInsensitive matches substrings after lowercasing both sides.
	CaseInsensitive
)

// PolicyFor returns CaseInsensitive when caseInsensitive is set.
func PolicyFor(caseInsensitive bool) Policy {
	if caseInsensitive {
		return CaseInsensitive
	}
	return CaseSensitive
}

// String returns the policy name used in logs and JSON.
func (p Policy) String() string {
	switch p {
	case CaseSensitive:
		return "case-sensitive"
	case CaseInsensitive:
		return "case-insensitive"
	default:
		return "unknown"
	}
}

// Match is a matching line together with its 1-based line number.
type Match struct {
	Number int    `json:"line"`
	Line   string `json:"text"`
}

// Search returns every line of contents that contains query.
func Search(query, contents string) []string {
	return filter(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive returns every line of contents that contains query
// when both are lowercased. Returned lines keep their original casing.
func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	return filter(contents, func(line string) bool {
		return strings.Contains(strings.ToLower(line), query)
	})
}

// Search runs the search variant selected by p.
func (p Policy) Search(query, contents string) []string {
	if p == CaseInsensitive {
		return SearchCaseInsensitive(query, contents)
	}
	return Search(query, contents)
}

// Matches is like Search but also reports line numbers.
func (p Policy) Matches(query, contents string) []Match {
	keep := p.matcher(query)

	var matches []Match
	for n, line := range Lines(contents) {
		if keep(line) {
			matches = append(matches, Match{Number: n, Line: line})
		}
	}
	return matches
}

func (p Policy) matcher(query string) func(string) bool {
	if p == CaseInsensitive {
		query = strings.ToLower(query)
		return func(line string) bool {
			return strings.Contains(strings.ToLower(line), query)
		}
	}
	return func(line string) bool {
		return strings.Contains(line, query)
	}
}

func filter(contents string, keep func(string) bool) []string {
	var out []string
	for _, line := range Lines(contents) {
		if keep(line) {
			out = append(out, line)
		}
	}
	return out
}
