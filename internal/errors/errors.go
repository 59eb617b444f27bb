package errors

import (
	"fmt"
)

// MinigrepError is the structured error type for minigrep.
// It carries enough context for the CLI to print a labelled diagnostic and
// for debug logs to record what failed.
type MinigrepError struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is derived from the code.
	Category Category

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable hint for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *MinigrepError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *MinigrepError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a MinigrepError with the same code.
func (e *MinigrepError) Is(target error) bool {
	if t, ok := target.(*MinigrepError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
func (e *MinigrepError) WithDetail(key, value string) *MinigrepError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *MinigrepError) WithSuggestion(suggestion string) *MinigrepError {
	e.Suggestion = suggestion
	return e
}

// New creates a new MinigrepError with the given code and message.
func New(code string, message string, cause error) *MinigrepError {
	return &MinigrepError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a MinigrepError from an existing error.
// The error's message becomes the MinigrepError message.
func Wrap(code string, err error) *MinigrepError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// NoQuery is returned when the query argument is missing.
func NoQuery() *MinigrepError {
	return New(ErrCodeNoQuery, "No query supplied", nil).
		WithSuggestion("usage: minigrep <query> <filename>")
}

// NoFilename is returned when the filename argument is missing.
func NoFilename() *MinigrepError {
	return New(ErrCodeNoFilename, "No filename supplied", nil).
		WithSuggestion("usage: minigrep <query> <filename>")
}

// FlagError wraps a command-line flag parsing failure.
func FlagError(cause error) *MinigrepError {
	return Wrap(ErrCodeInvalidFlag, cause).
		WithSuggestion("run 'minigrep --help' for usage")
}

// PreferencesError reports an unreadable or invalid preferences file.
func PreferencesError(path string, cause error) *MinigrepError {
	return New(ErrCodePreferencesInvalid, fmt.Sprintf("invalid preferences %s: %v", path, cause), cause).
		WithDetail("path", path)
}

// IOError creates an I/O error about path.
func IOError(code string, path string, cause error) *MinigrepError {
	msg := path
	if cause != nil {
		msg = cause.Error()
	}
	return New(code, msg, cause).WithDetail("path", path)
}

// GetCode extracts the error code from a MinigrepError anywhere in the chain.
// Returns empty string if there is none.
func GetCode(err error) string {
	if me := find(err); me != nil {
		return me.Code
	}
	return ""
}

// GetCategory extracts the category from a MinigrepError anywhere in the chain.
// Plain errors are reported as CategoryInternal.
func GetCategory(err error) Category {
	if me := find(err); me != nil {
		return me.Category
	}
	return CategoryInternal
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool {
	return err != nil && GetCategory(err) == CategoryConfig
}

func find(err error) *MinigrepError {
	for err != nil {
		if me, ok := err.(*MinigrepError); ok {
			return me
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}
