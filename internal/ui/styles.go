package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette, lime accent on gray.
const (
	ColorLime     = "154"
	ColorGray     = "245"
	ColorDarkGray = "238"
)

// Styles holds the styles used when printing matches.
type Styles struct {
	Match      lipgloss.Style
	LineNumber lipgloss.Style
	Separator  lipgloss.Style
}

// NewStyles returns styles bound to out. When color is false every style
// renders its input unchanged.
func NewStyles(out io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
		return Styles{
			Match:      r.NewStyle(),
			LineNumber: r.NewStyle(),
			Separator:  r.NewStyle(),
		}
	}

	// Config.UseColor has already decided; pin the profile.
	r.SetColorProfile(termenv.ANSI256)
	return Styles{
		Match:      r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)).TabWidth(lipgloss.NoTabConversion),
		LineNumber: r.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Separator:  r.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
	}
}
