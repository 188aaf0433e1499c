// Package constants provides centralized constant values used throughout docket.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Application identity.
const (
	// AppName is the canonical binary and product name.
	AppName = "docket"

	// EnvPrefix is the prefix for environment variable configuration overrides,
	// e.g. DOCKET_UI_THEME or DOCKET_STORE_PATH.
	EnvPrefix = "DOCKET"
)

// File names used by docket for state persistence.
const (
	// StoreFileName is the name of the JSON file that stores all task groups.
	// The name is shared with the predecessor tool so existing data files
	// load without migration.
	StoreFileName = "todo_list.json"
)

// Directory names and paths used by docket for organizing data.
const (
	// DocketHome is the hidden directory name where docket stores all its data.
	// This directory is created in the user's home directory.
	DocketHome = ".docket"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Validation limits applied to user input.
const (
	// MaxDescriptionLength is the longest task description the store accepts,
	// counted in characters.
	MaxDescriptionLength = 200
)

// File locking configuration for cross-process store access.
const (
	// LockTimeout is the maximum duration to wait for the store file lock.
	LockTimeout = 5 * time.Second

	// LockRetryInterval is the pause between lock acquisition attempts.
	LockRetryInterval = 50 * time.Millisecond
)

// File system permissions for docket-owned files and directories.
const (
	// DirPerm is the permission mode for directories created by docket.
	DirPerm = 0o750

	// FilePerm is the permission mode for data and config files.
	FilePerm = 0o600
)

// Log rotation defaults for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size of a log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of a rotated log file before deletion.
	LogMaxAgeDays = 28
)

// Theme names shipped with docket.
const (
	// ThemeDracula is the default dark theme.
	ThemeDracula = "dracula"

	// ThemeMonokai is the warm high-contrast theme.
	ThemeMonokai = "monokai"

	// ThemeSolarized is the low-contrast theme for solarized terminals.
	ThemeSolarized = "solarized"
)

// Display defaults.
const (
	// DefaultTheme is the theme used when no configuration overrides it.
	DefaultTheme = ThemeDracula

	// TimeFormatISO is the timestamp layout used in generated file headers.
	TimeFormatISO = "2006-01-02 15:04:05"
)
