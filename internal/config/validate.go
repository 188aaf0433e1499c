package config

import (
	"fmt"

	"github.com/mrz1836/docket/internal/constants"
	dkterrors "github.com/mrz1836/docket/internal/errors"
)

// ThemeNames returns the names of the shipped themes in display order.
func ThemeNames() []string {
	return []string{
		constants.ThemeDracula,
		constants.ThemeMonokai,
		constants.ThemeSolarized,
	}
}

// IsValidTheme reports whether name is one of the shipped themes.
func IsValidTheme(name string) bool {
	for _, known := range ThemeNames() {
		if name == known {
			return true
		}
	}
	return false
}

// Validate checks a Config for values no layer is allowed to produce.
// It returns the first problem found.
func Validate(cfg *Config) error {
	if !IsValidTheme(cfg.UI.Theme) {
		return fmt.Errorf("%w: %q (available: %v)", dkterrors.ErrUnknownTheme, cfg.UI.Theme, ThemeNames())
	}

	if cfg.Log.MaxSizeMB < 1 {
		return fmt.Errorf("log.max_size_mb must be at least 1, got %d", cfg.Log.MaxSizeMB)
	}
	if cfg.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must not be negative, got %d", cfg.Log.MaxBackups)
	}
	if cfg.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log.max_age_days must not be negative, got %d", cfg.Log.MaxAgeDays)
	}

	return nil
}
