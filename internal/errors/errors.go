// Package errors provides centralized error handling for docket.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInvalidGroupName indicates a group name containing forbidden
	// characters or a denylisted word. The wrapping message carries the
	// offending name.
	ErrInvalidGroupName = errors.New("invalid group name")

	// ErrInvalidDescription indicates a task description that is too long or
	// contains a URL. The wrapping message carries the offending text.
	ErrInvalidDescription = errors.New("invalid description")

	// ErrInvalidTaskID indicates a task id list entry that is not a number.
	ErrInvalidTaskID = errors.New("invalid task id")

	// ErrGroupNotFound indicates the requested group does not exist.
	ErrGroupNotFound = errors.New("group not found")

	// ErrTaskNotFound indicates the requested task id does not exist in the group.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyBatch indicates an add operation was given no descriptions.
	ErrEmptyBatch = errors.New("no task descriptions provided")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrStoreCorrupted indicates the data file could not be parsed.
	// The store recovers by starting from an empty mapping.
	ErrStoreCorrupted = errors.New("data file corrupted")

	// ErrPersistFailed indicates a snapshot write to the data file failed.
	// The in-memory state is unchanged and remains authoritative.
	ErrPersistFailed = errors.New("failed to persist data file")

	// ErrNoDataFile indicates no data file exists to operate on.
	ErrNoDataFile = errors.New("no data file found")

	// ErrResetDeclined indicates the caller did not confirm the reset.
	ErrResetDeclined = errors.New("reset declined")

	// ErrLockTimeout indicates the data file lock could not be acquired
	// within the timeout period.
	ErrLockTimeout = errors.New("lock acquisition timeout")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrUnknownTheme indicates an unrecognized theme name was specified.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrMenuCanceled indicates that the user canceled a menu or prompt.
	ErrMenuCanceled = errors.New("menu canceled by user")

	// ErrNoMenuOptions indicates that no options were provided to a menu.
	ErrNoMenuOptions = errors.New("no menu options provided")

	// ErrNonInteractiveMode indicates that an operation requiring a prompt
	// was attempted without a terminal and without the bypassing flag.
	ErrNonInteractiveMode = errors.New("interactive prompt unavailable")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	// Commands should silence cobra's error printing when this is returned.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
