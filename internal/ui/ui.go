// Package ui decides whether match output is colored and how it is styled.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config configures match highlighting.
type Config struct {
	Output    io.Writer
	ColorMode string
	NoColor   bool
}

// ConfigOption is a function that modifies Config.
type ConfigOption func(*Config)

// WithColorMode sets the color mode (auto, always, never).
func WithColorMode(mode string) ConfigOption {
	return func(c *Config) {
		c.ColorMode = mode
	}
}

// NewConfig creates a Config for output with the given options.
// NoColor defaults to the NO_COLOR environment variable.
func NewConfig(output io.Writer, opts ...ConfigOption) Config {
	cfg := Config{
		Output:    output,
		ColorMode: ColorAuto,
		NoColor:   DetectNoColor(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// UseColor reports whether output should carry ANSI styling.
func (c Config) UseColor() bool {
	switch c.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return !c.NoColor && IsTTY(c.Output)
	}
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if the NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
