package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Diagnostic labels printed before the error message.
const (
	LabelArguments = "Problem parsing arguments"
	LabelRun       = "An error occurred"
)

// Label returns the diagnostic label for err: configuration errors are
// argument problems, everything else is a run failure.
func Label(err error) string {
	if IsConfig(err) {
		return LabelArguments
	}
	return LabelRun
}

// Message returns the user-facing message for err without the code prefix.
func Message(err error) string {
	me := find(err)
	if me == nil {
		return err.Error()
	}
	return strings.Replace(err.Error(), me.Error(), me.Message, 1)
}

// FormatForCLI formats an error for the error stream.
// The first line is always "<label>: <message>". When verbose is set the
// hint and code follow on separate lines.
func FormatForCLI(err error, verbose bool) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s", Label(err), Message(err)))

	if !verbose {
		return sb.String()
	}

	if me := find(err); me != nil && me.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n  Hint: %s", me.Suggestion))
	}
	if code := GetCode(err); code != "" {
		sb.WriteString(fmt.Sprintf("\n  Code: %s", code))
	}

	return sb.String()
}

// jsonError is the JSON representation of an error.
type jsonError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Category   string            `json:"category"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Cause      string            `json:"cause,omitempty"`
}

// FormatJSON returns a JSON representation of the error.
func FormatJSON(err error) ([]byte, error) {
	if err == nil {
		return json.Marshal(nil)
	}

	me := find(err)
	if me == nil {
		me = Wrap(ErrCodeInternal, err)
	}

	je := jsonError{
		Code:       me.Code,
		Message:    me.Message,
		Category:   string(me.Category),
		Details:    me.Details,
		Suggestion: me.Suggestion,
	}
	if me.Cause != nil {
		je.Cause = me.Cause.Error()
	}

	return json.Marshal(je)
}

// FormatForLog returns key-value pairs suitable for slog attributes.
func FormatForLog(err error) []any {
	if err == nil {
		return nil
	}

	me := find(err)
	if me == nil {
		return []any{"error", err.Error()}
	}

	attrs := []any{
		"error_code", me.Code,
		"message", me.Message,
		"category", string(me.Category),
	}
	if me.Cause != nil {
		attrs = append(attrs, "cause", me.Cause.Error())
	}
	for k, v := range me.Details {
		attrs = append(attrs, "detail_"+k, v)
	}
	return attrs
}
