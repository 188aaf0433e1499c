package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	// ===================
	// Validation
	// ===================
	{
		err: ErrInvalidGroupName,
		info: ErrorInfo{
			Message: "The group name contains forbidden characters or words.",
			Action:  `Avoid < > : " / \ | ? *, control characters, and denylisted words.`,
		},
	},
	{
		err: ErrInvalidDescription,
		info: ErrorInfo{
			Message: "The description is too long or contains a URL.",
			Action:  "Keep descriptions to 200 characters and leave links out.",
		},
	},
	{
		err: ErrInvalidTaskID,
		info: ErrorInfo{
			Message: "The task id list contains a non-numeric entry.",
			Action:  "Provide ids as numbers separated by commas, e.g. '1,2,5'.",
		},
	},
	{
		err: ErrEmptyBatch,
		info: ErrorInfo{
			Message: "No task descriptions were provided.",
			Action:  "Provide at least one description to add.",
		},
	},
	{
		err: ErrEmptyValue,
		info: ErrorInfo{
			Message: "A required value was not provided.",
			Action:  "Provide the required value and try again.",
		},
	},

	// ===================
	// Store & Tasks
	// ===================
	{
		err: ErrGroupNotFound,
		info: ErrorInfo{
			Message: "The specified group was not found.",
			Action:  "Run 'docket list' to see available groups.",
		},
	},
	{
		err: ErrTaskNotFound,
		info: ErrorInfo{
			Message: "The specified task was not found in the group.",
			Action:  "Run 'docket list <group>' to see its task ids.",
		},
	},
	{
		err: ErrStoreCorrupted,
		info: ErrorInfo{
			Message: "The data file is corrupted and could not be read.",
			Action:  "Starting from an empty list. Repair or remove the file to silence this.",
		},
	},
	{
		err: ErrPersistFailed,
		info: ErrorInfo{
			Message: "The change could not be written to the data file.",
			Action:  "Check disk space and file permissions, then retry the operation.",
		},
	},
	{
		err: ErrNoDataFile,
		info: ErrorInfo{
			Message: "No data file found.",
			Action:  "Add a task with 'docket add' to create one.",
		},
	},
	{
		err: ErrResetDeclined,
		info: ErrorInfo{
			Message: "Reset canceled. No data was removed.",
			Action:  "",
		},
	},
	{
		err: ErrLockTimeout,
		info: ErrorInfo{
			Message: "Could not acquire the data file lock. Another process may be using it.",
			Action:  "Wait and try again, or check for stuck docket processes.",
		},
	},

	// ===================
	// User Interaction
	// ===================
	{
		err: ErrMenuCanceled,
		info: ErrorInfo{
			Message: "Selection was canceled.",
			Action:  "",
		},
	},
	{
		err: ErrNoMenuOptions,
		info: ErrorInfo{
			Message: "No menu options are available.",
			Action:  "",
		},
	},
	{
		err: ErrNonInteractiveMode,
		info: ErrorInfo{
			Message: "This operation requires confirmation in non-interactive mode.",
			Action:  "Use the --yes or --force flag to skip the prompt.",
		},
	},

	// ===================
	// CLI
	// ===================
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "The specified output format is not supported.",
			Action:  "Use 'text' or 'json'.",
		},
	},
	{
		err: ErrUnknownTheme,
		info: ErrorInfo{
			Message: "The specified theme is not recognized.",
			Action:  "Run 'docket theme' to see available themes.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
// Built once from errorInfoEntries during package initialization.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

// buildErrorInfoMap creates a map from the errorInfoEntries slice.
// This is called once during package init for O(1) direct lookups.
func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// It first tries O(1) direct map lookup for unwrapped sentinel errors,
// then falls back to errors.Is() traversal for wrapped errors.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	// Fast path: O(1) lookup for direct sentinel errors
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	// Slow path: errors.Is() for wrapped errors
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// This function maps sentinel errors to helpful, actionable messages
// that are suitable for display to end users.
//
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve or work around the issue.
//
// For errors that are not recoverable or have no clear action, the action
// string will be empty.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
