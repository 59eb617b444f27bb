package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mgerrors "github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/search"
)

func TestWriter_Lines_OnePerLine(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf)

	// When: printing two lines
	err := w.Lines("a", []string{"alpha", "beta"})

	// Then: each line is terminated by a newline and nothing else is written
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\n", buf.String())
}

func TestWriter_Lines_Empty(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, New(buf).Lines("x", nil))
	assert.Empty(t, buf.String())
}

func TestWriter_Text_LineNumbers(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, WithLineNumbers(true))

	err := w.Text("Pick", []search.Match{{Number: 3, Line: "Pick three."}})

	require.NoError(t, err)
	assert.Equal(t, "3:Pick three.\n", buf.String())
}

func TestWriter_Text_WithoutLineNumbers(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	err := w.Text("Pick", []search.Match{{Number: 3, Line: "Pick three."}})

	require.NoError(t, err)
	assert.Equal(t, "Pick three.\n", buf.String())
}

type bracketDecorator struct{}

func (bracketDecorator) Line(query, line string) string {
	return strings.ReplaceAll(line, query, "["+query+"]")
}

func (bracketDecorator) Prefix(number string) string { return "<" + number + ">" }

func TestWriter_Text_UsesDecorator(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, WithDecorator(bracketDecorator{}), WithLineNumbers(true))

	err := w.Text("ick", []search.Match{{Number: 1, Line: "Pick"}})

	require.NoError(t, err)
	assert.Equal(t, "<1>P[ick]\n", buf.String())
}

func TestWriter_WithNilDecoratorKeepsPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, WithDecorator(nil))

	require.NoError(t, w.Lines("a", []string{"a"}))
	assert.Equal(t, "a\n", buf.String())
}

func TestWriter_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf)

	err := w.JSON([]search.Match{{Number: 2, Line: "<safe> & fast"}})

	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, float64(2), got[0]["line"])
	assert.Equal(t, "<safe> & fast", got[0]["text"])
	assert.Contains(t, buf.String(), "<safe> & fast", "HTML characters are not escaped")
}

func TestWriter_JSON_NoMatchesIsEmptyArray(t *testing.T) {
	buf := &bytes.Buffer{}

	require.NoError(t, New(buf).JSON(nil))
	assert.Equal(t, "[]\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriter_WriteFailure(t *testing.T) {
	w := New(failingWriter{})

	err := w.Lines("a", []string{"a"})

	require.Error(t, err)
	assert.Equal(t, mgerrors.ErrCodeOutputWrite, mgerrors.GetCode(err))
	assert.ErrorContains(t, errors.Unwrap(err), "broken pipe")
}
