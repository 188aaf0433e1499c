package task

import (
	"fmt"
	"strconv"
	"strings"

	dkterrors "github.com/mrz1836/docket/internal/errors"
)

// ParseIDs parses a comma-separated id list strictly. Entries are trimmed of
// surrounding whitespace; any entry that is not a positive integer fails the
// whole parse with ErrInvalidTaskID carrying the offending entry.
//
// MarkComplete uses this parser: a typo in the id list aborts the operation
// before any task is touched.
func ParseIDs(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		entry := strings.TrimSpace(part)
		id, ok := parseID(entry)
		if !ok {
			return nil, fmt.Errorf("%w: %q", dkterrors.ErrInvalidTaskID, entry)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseIDsLenient parses a comma-separated id list, silently dropping
// entries that are not positive integers. Duplicate ids are harmless;
// membership is all that matters to the callers.
//
// DeleteTasks uses this parser. The asymmetry with ParseIDs preserves the
// observed contract: a bad entry aborts a completion but not a deletion.
func ParseIDsLenient(csv string) []int {
	parts := strings.Split(csv, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		if id, ok := parseID(strings.TrimSpace(part)); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// parseID converts a single trimmed entry to a task id.
// Task ids start at 1, so zero and negative values are rejected along with
// anything non-numeric.
func parseID(entry string) (int, bool) {
	if entry == "" {
		return 0, false
	}
	id, err := strconv.Atoi(entry)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
