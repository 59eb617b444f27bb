package ui

import (
	"strings"

	"github.com/Aman-CERP/minigrep/internal/search"
)

// Highlighter styles the parts of a line that match the query.
type Highlighter struct {
	styles  Styles
	policy  search.Policy
	enabled bool
}

// NewHighlighter creates a Highlighter for cfg. Spans are located with policy
// so case-insensitive runs highlight the original casing.
func NewHighlighter(cfg Config, policy search.Policy) *Highlighter {
	color := cfg.UseColor()
	return &Highlighter{
		styles:  NewStyles(cfg.Output, color),
		policy:  policy,
		enabled: color,
	}
}

// Enabled reports whether Line and LineNumber add styling.
func (h *Highlighter) Enabled() bool {
	return h.enabled
}

// Line returns line with every match of query styled.
func (h *Highlighter) Line(query, line string) string {
	if !h.enabled {
		return line
	}

	spans := h.policy.Spans(query, line)
	if len(spans) == 0 {
		return line
	}

	var sb strings.Builder
	last := 0
	for _, s := range spans {
		sb.WriteString(line[last:s.Start])
		sb.WriteString(h.styles.Match.Render(line[s.Start:s.End]))
		last = s.End
	}
	sb.WriteString(line[last:])
	return sb.String()
}

// Prefix returns the styled "N:" line number prefix.
func (h *Highlighter) Prefix(number string) string {
	if !h.enabled {
		return number + ":"
	}
	return h.styles.LineNumber.Render(number) + h.styles.Separator.Render(":")
}
