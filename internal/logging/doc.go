// Package logging provides opt-in file-based logging with rotation for minigrep.
// When the --debug flag is set, JSON logs are written to ~/.minigrep/logs/.
//
// Without --debug nothing is logged, so stdout carries only matches and
// stderr only diagnostics.
package logging
