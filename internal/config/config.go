// Package config builds the per-invocation search configuration and loads
// user preferences for minigrep.
package config

import (
	"os"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

// CaseInsensitiveEnv enables case-insensitive matching when present in the
// environment, whatever its value.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// Config is the immutable configuration of a single search run.
type Config struct {
	Query           string
	Filename        string
	CaseInsensitive bool
}

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// New builds a Config from positional arguments (query, then filename,
// without the program name). Arguments past the filename are ignored.
//
// Case-insensitive mode is enabled when CASE_INSENSITIVE is set at all, so
// CASE_INSENSITIVE=0 and CASE_INSENSITIVE= both enable it.
func New(args []string, lookup LookupFunc) (Config, error) {
	if len(args) < 1 {
		return Config{}, errors.NoQuery()
	}
	if len(args) < 2 {
		return Config{}, errors.NoFilename()
	}

	_, caseInsensitive := lookup(CaseInsensitiveEnv)

	return Config{
		Query:           args[0],
		Filename:        args[1],
		CaseInsensitive: caseInsensitive,
	}, nil
}

// FromEnvironment is New using the process environment.
func FromEnvironment(args []string) (Config, error) {
	return New(args, os.LookupEnv)
}
