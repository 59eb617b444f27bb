// Package output writes search results to the standard output stream.
package output

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"

	"github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/search"
)

// Decorator adds optional styling to printed lines.
type Decorator interface {
	Line(query, line string) string
	Prefix(number string) string
}

// plain prints lines as they are.
type plain struct{}

func (plain) Line(_, line string) string  { return line }
func (plain) Prefix(number string) string { return number + ":" }

// Writer prints matches, one per line, in the order given.
type Writer struct {
	out         io.Writer
	decorator   Decorator
	lineNumbers bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithDecorator styles matches, e.g. with a ui.Highlighter.
func WithDecorator(d Decorator) Option {
	return func(w *Writer) {
		if d != nil {
			w.decorator = d
		}
	}
}

// WithLineNumbers prefixes each printed line with "N:".
func WithLineNumbers(enabled bool) Option {
	return func(w *Writer) {
		w.lineNumbers = enabled
	}
}

// New creates a new output Writer.
func New(out io.Writer, opts ...Option) *Writer {
	w := &Writer{
		out:       out,
		decorator: plain{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Text prints each match followed by a newline.
func (w *Writer) Text(query string, matches []search.Match) error {
	bw := bufio.NewWriter(w.out)

	for _, m := range matches {
		if w.lineNumbers {
			_, _ = bw.WriteString(w.decorator.Prefix(strconv.Itoa(m.Number)))
		}
		_, _ = bw.WriteString(w.decorator.Line(query, m.Line))
		_ = bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return errors.New(errors.ErrCodeOutputWrite, "failed to write results", err)
	}
	return nil
}

// Lines prints plain lines with no numbering.
func (w *Writer) Lines(query string, lines []string) error {
	bw := bufio.NewWriter(w.out)

	for _, line := range lines {
		_, _ = bw.WriteString(w.decorator.Line(query, line))
		_ = bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return errors.New(errors.ErrCodeOutputWrite, "failed to write results", err)
	}
	return nil
}

// JSON prints matches as an indented JSON array. No matches prints [].
func (w *Writer) JSON(matches []search.Match) error {
	if matches == nil {
		matches = []search.Match{}
	}

	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(matches); err != nil {
		return errors.New(errors.ErrCodeOutputWrite, "failed to write results", err)
	}
	return nil
}
