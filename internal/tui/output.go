// Package tui provides terminal user interface components for docket.
package tui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	dkterrors "github.com/mrz1836/docket/internal/errors"
)

// Marks prefixed to TTY status lines. The glyphs always print; only the
// styling around them is subject to NO_COLOR.
const (
	successMark = "✓"
	errorMark   = "✗"
	warningMark = "⚠"
)

// Output is the sink commands print results through. Text mode renders
// themed status lines; JSON mode stays machine-readable and suppresses
// everything that is not a payload or an error.
type Output interface {
	// Success reports a completed mutation.
	Success(msg string)
	// Error reports a failure.
	Error(err error)
	// Warning reports a recoverable problem the command survived.
	Warning(msg string)
	// Info prints a neutral line.
	Info(msg string)
	// Hint suggests a follow-up action for the preceding message.
	Hint(action string)
	// JSON writes v as an indented JSON payload.
	JSON(v any) error
}

// NewOutput picks the sink for the requested output format. Anything
// other than "json" gets the themed TTY sink.
func NewOutput(w io.Writer, format string, theme Theme) Output {
	if format == "json" {
		return NewJSONOutput(w)
	}
	return NewTTYOutput(w, theme)
}

// encodeJSON writes v to w indented with two spaces, the shape both
// sinks use for payloads.
func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return dkterrors.Wrap(err, "failed to encode JSON")
	}
	return nil
}

// TTYOutput renders status lines with the active theme's output styles.
type TTYOutput struct {
	w      io.Writer
	styles *OutputStyles
}

// NewTTYOutput builds a themed TTY sink writing to w.
func NewTTYOutput(w io.Writer, theme Theme) *TTYOutput {
	return &TTYOutput{
		w:      w,
		styles: NewOutputStyles(theme),
	}
}

func (o *TTYOutput) line(style lipgloss.Style, text string) {
	_, _ = fmt.Fprintln(o.w, style.Render(text))
}

// Success reports a completed mutation.
func (o *TTYOutput) Success(msg string) {
	o.line(o.styles.Success, successMark+" "+msg)
}

// Error reports a failure.
func (o *TTYOutput) Error(err error) {
	o.line(o.styles.Error, errorMark+" "+err.Error())
}

// Warning reports a recoverable problem the command survived.
func (o *TTYOutput) Warning(msg string) {
	o.line(o.styles.Warning, warningMark+" "+msg)
}

// Info prints a neutral line.
func (o *TTYOutput) Info(msg string) {
	o.line(o.styles.Info, msg)
}

// Hint prints a dimmed follow-up suggestion.
func (o *TTYOutput) Hint(action string) {
	o.line(o.styles.Dim, "Try: "+action)
}

// JSON writes v as an indented JSON payload.
func (o *TTYOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}

// JSONOutput keeps stdout machine-readable. Status lines are dropped so
// the only things ever written are payloads and error objects.
type JSONOutput struct {
	w io.Writer
}

// NewJSONOutput builds a JSON sink writing to w.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{w: w}
}

// Success is dropped in JSON mode.
func (o *JSONOutput) Success(_ string) {}

// Warning is dropped in JSON mode.
func (o *JSONOutput) Warning(_ string) {}

// Info is dropped in JSON mode.
func (o *JSONOutput) Info(_ string) {}

// Hint is dropped in JSON mode.
func (o *JSONOutput) Hint(_ string) {}

// Error writes the failure as an error object so scripted callers can
// parse it like any other payload.
func (o *JSONOutput) Error(err error) {
	_ = encodeJSON(o.w, struct {
		Error string `json:"error"`
	}{Error: err.Error()})
}

// JSON writes v as an indented JSON payload.
func (o *JSONOutput) JSON(v any) error {
	return encodeJSON(o.w, v)
}
