// Package config provides configuration management for docket with layered
// precedence.
//
// Configuration sources are loaded in the following order (highest precedence
// first):
//  1. CLI flags (applied by the CLI layer after Load)
//  2. Environment variables (DOCKET_* prefix)
//  3. Project config (./.docket.yaml)
//  4. Global config (~/.docket/config.yaml)
//  5. Built-in defaults
//
// Each higher level overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

// Config is the root configuration structure for docket.
type Config struct {
	// Store contains settings for the task data file.
	Store StoreConfig `yaml:"store" mapstructure:"store"`

	// UI contains settings for terminal rendering.
	UI UIConfig `yaml:"ui" mapstructure:"ui"`

	// Log contains settings for the rotating CLI log file.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// StoreConfig contains settings for the task data file.
type StoreConfig struct {
	// Path is the location of the JSON data file. Empty means the default
	// ~/.docket/todo_list.json (honoring DOCKET_HOME). Resolve with
	// ResolvePath before use.
	Path string `yaml:"path" mapstructure:"path"`
}

// UIConfig contains settings for terminal rendering.
type UIConfig struct {
	// Theme is the active color theme (dracula, monokai, or solarized).
	Theme string `yaml:"theme" mapstructure:"theme"`

	// NoColor disables all color output. The NO_COLOR environment variable
	// and TERM=dumb have the same effect regardless of this setting.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

// LogConfig contains rotation settings for the CLI log file.
type LogConfig struct {
	// MaxSizeMB is the maximum size of the log file before rotation.
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is the number of rotated log files to retain.
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is the maximum age of a rotated log file before deletion.
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`

	// Compress enables gzip compression of rotated log files.
	Compress bool `yaml:"compress" mapstructure:"compress"`
}
