// Package errors provides structured error handling for minigrep.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors (arguments, flags, preferences)
//   - 2XX: IO errors (opening or reading the searched file)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates the invocation could not be turned into a configuration.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates file I/O errors.
	CategoryIO Category = "IO"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeNoQuery            = "ERR_101_NO_QUERY"
	ErrCodeNoFilename         = "ERR_102_NO_FILENAME"
	ErrCodeInvalidFlag        = "ERR_103_INVALID_FLAG"
	ErrCodePreferencesInvalid = "ERR_104_PREFERENCES_INVALID"

	// IO errors (200-299)
	ErrCodeFileNotFound   = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFilePermission = "ERR_202_FILE_PERMISSION"
	ErrCodeNotRegularFile = "ERR_203_NOT_REGULAR_FILE"
	ErrCodeInvalidText    = "ERR_204_INVALID_TEXT"
	ErrCodeFileRead       = "ERR_205_FILE_READ"

	// Internal errors (500-599)
	ErrCodeInternal    = "ERR_501_INTERNAL"
	ErrCodeOutputWrite = "ERR_502_OUTPUT_WRITE"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	// "ERR_" prefix followed by three digits
	if len(code) < 7 {
		return CategoryInternal
	}

	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	default:
		return CategoryInternal
	}
}
