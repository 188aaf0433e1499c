// Package domain provides shared domain types for the docket task manager.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// JSON field names match the persisted data file format exactly.
package domain

import "sort"

// Task represents a single entry in a task group.
//
// Example JSON representation:
//
//	{
//	    "id": 1,
//	    "description": "wash dishes",
//	    "completed": false
//	}
type Task struct {
	// ID is the task's identifier, unique within its group. IDs start at 1,
	// grow monotonically, and are never reused after deletion, so a group's
	// id sequence may have gaps.
	ID int `json:"id"`

	// Description is the user-provided task text.
	Description string `json:"description"`

	// Completed reports whether the task has been marked done.
	Completed bool `json:"completed"`
}

// Groups is the full store document: group name to its ordered task list.
// Task order within a group is insertion order and is preserved for display.
type Groups map[string][]Task

// NextID returns the id the next task added to the named group would receive:
// one past the highest existing id, or 1 for a missing or empty group.
func (g Groups) NextID(name string) int {
	maxID := 0
	for _, t := range g[name] {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// Names returns all group names in sorted order.
// Sorting keeps display output and JSON key order aligned.
func (g Groups) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the document.
// Mutating the copy never affects the original.
func (g Groups) Clone() Groups {
	if g == nil {
		return nil
	}
	out := make(Groups, len(g))
	for name, tasks := range g {
		copied := make([]Task, len(tasks))
		copy(copied, tasks)
		out[name] = copied
	}
	return out
}

// AllCompleted reports whether every task in the list is completed.
// An empty list counts as fully completed.
func AllCompleted(tasks []Task) bool {
	for _, t := range tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}
