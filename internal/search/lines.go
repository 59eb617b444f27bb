package search

import (
	"iter"
	"strings"
)

// Lines yields each line of contents with its 1-based line number.
//
// A trailing "\n" does not produce an extra empty line, and a "\r\n"
// terminator is stripped as a unit. A lone "\r" is kept as line text.
// Yielded lines are sub-slices of contents.
func Lines(contents string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := 0
		for len(contents) > 0 {
			n++
			line := contents
			if i := strings.IndexByte(contents, '\n'); i >= 0 {
				line = contents[:i]
				contents = contents[i+1:]
			} else {
				contents = ""
			}
			line = strings.TrimSuffix(line, "\r")
			if !yield(n, line) {
				return
			}
		}
	}
}
