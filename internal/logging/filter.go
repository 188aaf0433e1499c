// Package logging provides logging utilities including URL filtering.
// This package contains hooks and utilities for zerolog that keep embedded
// URLs out of the persisted log file, mirroring the store's policy of never
// persisting URL-bearing descriptions.
package logging

import (
	"io"
	"regexp"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for filtered URLs.
const RedactedValue = "[URL]"

// urlPattern matches embedded http/https URLs. Matching is case-sensitive
// with an optional "s", the same rule the description validator applies.
var urlPattern = regexp.MustCompile(`https?://[^\s"\\]+`) //nolint:gochecknoglobals // Package-level pattern for reuse

// URLFilterHook is a zerolog hook that flags log entries carrying URLs.
// Zerolog hooks cannot rewrite the message, so the hook only marks the
// entry; the actual scrubbing happens in FilteringWriter on the file sink.
type URLFilterHook struct{}

// NewURLFilterHook creates a new URLFilterHook.
func NewURLFilterHook() *URLFilterHook {
	return &URLFilterHook{}
}

// Run implements the zerolog.Hook interface.
func (h *URLFilterHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsURL(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsURL reports whether s contains an embedded http/https URL.
func ContainsURL(s string) bool {
	return urlPattern.MatchString(s)
}

// FilterValue replaces every embedded URL in value with [URL].
func FilterValue(value string) string {
	return urlPattern.ReplaceAllString(value, RedactedValue)
}

// FilteringWriter wraps an io.Writer and scrubs URLs from everything
// written through it. It wraps the log file sink so rejected input echoed
// into error messages never lands a URL on disk.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a new FilteringWriter that wraps the given writer.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer, filtering URLs before writing.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	filtered := FilterValue(string(p))
	_, err = fw.w.Write([]byte(filtered))
	if err != nil {
		return 0, err
	}
	// Return the original length so callers don't see a short write when
	// the replacement changed the byte count.
	return len(p), nil
}
