// Package task implements the docket task store and validation engine.
// It owns the in-memory group/task document, enforces name and description
// rules on every mutation, and rewrites the full JSON snapshot to disk after
// each successful change.
package task

import (
	"strings"
	"unicode/utf8"

	"github.com/mrz1836/docket/internal/constants"
)

// forbiddenNameChars are the characters rejected in group names. The set
// matches what most filesystems reject in file names, which keeps group
// names safe to reuse as export file names.
const forbiddenNameChars = `<>:"/\|?*`

// denylist holds substrings disallowed in group names, matched
// case-insensitively. Substring matching is deliberate and exact: "Essex"
// is rejected because it contains "sex".
//
//nolint:gochecknoglobals // Fixed package-level word list
var denylist = []string{
	"sex",
	"violence",
	"drugs",
	"hate",
	"abuse",
	"illegal",
	"adult",
	"explicit",
	"harassment",
	"discrimination",
	"extremism",
}

// ValidGroupName reports whether name is acceptable as a group name.
// A name is rejected when it contains any forbidden character
// (< > : " / \ | ? * or an ASCII control character), or when a
// case-insensitive substring match finds a denylisted word.
//
// The empty string passes; rejecting empty input is the presentation
// layer's job. Descriptions are validated separately by ValidDescription
// and are intentionally NOT checked against the denylist.
func ValidGroupName(name string) bool {
	for _, r := range name {
		if r < 0x20 {
			return false
		}
		if strings.ContainsRune(forbiddenNameChars, r) {
			return false
		}
	}

	lower := strings.ToLower(name)
	for _, word := range denylist {
		if strings.Contains(lower, word) {
			return false
		}
	}

	return true
}

// ValidDescription reports whether text is acceptable as a task description.
// A description is rejected when it exceeds 200 characters (runes, not
// bytes) or contains an embedded URL (a case-sensitive "http://" or
// "https://" substring, so "HTTP://" passes).
//
// Group-name rules do not apply here: forbidden characters and denylisted
// words are allowed in descriptions.
func ValidDescription(text string) bool {
	if utf8.RuneCountInString(text) > constants.MaxDescriptionLength {
		return false
	}
	if strings.Contains(text, "http://") || strings.Contains(text, "https://") {
		return false
	}
	return true
}
