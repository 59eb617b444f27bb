package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/ui"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Preferences are user defaults for output and logging. They never affect
// which lines match.
//
// Sources, in increasing precedence:
//  1. Built-in defaults
//  2. User config ($XDG_CONFIG_HOME/minigrep/config.yaml or ~/.config/minigrep/config.yaml)
//  3. Environment variables (MINIGREP_*)
//
// Command-line flags are applied on top by the caller.
type Preferences struct {
	// Color is one of auto, always, never.
	Color string `yaml:"color" json:"color"`
	// LineNumbers prefixes each match with its line number.
	LineNumbers bool `yaml:"line_numbers" json:"line_numbers"`
	// Format is text or json.
	Format string `yaml:"format" json:"format"`
	// LogLevel is used for --debug logging (debug, info, warn, error).
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultPreferences returns the built-in defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		Color:       ui.ColorAuto,
		LineNumbers: false,
		Format:      FormatText,
		LogLevel:    "debug",
	}
}

// UserConfigPath returns the path of the user preferences file.
func UserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "minigrep", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "minigrep", "config.yaml")
	}
	return filepath.Join(home, ".config", "minigrep", "config.yaml")
}

// LoadPreferences loads preferences from the user config file, if any, and
// applies environment overrides. A missing file is not an error.
func LoadPreferences() (Preferences, error) {
	return LoadPreferencesFrom(UserConfigPath())
}

// LoadPreferencesFrom is LoadPreferences with an explicit file path.
func LoadPreferencesFrom(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := prefs.decode(data); err != nil {
			return Preferences{}, errors.PreferencesError(path, err)
		}
	case stderrors.Is(err, os.ErrNotExist):
		// No user config is fine
	default:
		return Preferences{}, errors.PreferencesError(path, err)
	}

	if err := prefs.applyEnvOverrides(os.LookupEnv); err != nil {
		return Preferences{}, errors.PreferencesError("environment", err)
	}

	if err := prefs.Validate(); err != nil {
		return Preferences{}, errors.PreferencesError(path, err)
	}

	return prefs, nil
}

// decode merges YAML data into p. Keys absent from the file keep their
// current values; unknown keys are rejected.
func (p *Preferences) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !stderrors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnvOverrides applies MINIGREP_* environment variable overrides.
func (p *Preferences) applyEnvOverrides(lookup LookupFunc) error {
	if v, ok := lookup("MINIGREP_COLOR"); ok && v != "" {
		p.Color = strings.ToLower(v)
	}
	if v, ok := lookup("MINIGREP_FORMAT"); ok && v != "" {
		p.Format = strings.ToLower(v)
	}
	if v, ok := lookup("MINIGREP_LOG_LEVEL"); ok && v != "" {
		p.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("MINIGREP_LINE_NUMBERS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MINIGREP_LINE_NUMBERS: %w", err)
		}
		p.LineNumbers = b
	}
	return nil
}

// Validate checks that enumerated fields hold known values.
func (p Preferences) Validate() error {
	switch p.Color {
	case ui.ColorAuto, ui.ColorAlways, ui.ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", p.Color)
	}

	switch p.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format must be text or json, got %q", p.Format)
	}

	switch p.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", p.LogLevel)
	}

	return nil
}
