package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/docket/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are the base layer that config files, environment
// variables, and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			// Path: empty means ~/.docket/todo_list.json, resolved lazily so
			// a DOCKET_HOME set after startup is still honored.
			Path: "",
		},
		UI: UIConfig{
			Theme:   constants.DefaultTheme,
			NoColor: false,
		},
		Log: LogConfig{
			MaxSizeMB:  constants.LogMaxSizeMB,
			MaxBackups: constants.LogMaxBackups,
			MaxAgeDays: constants.LogMaxAgeDays,
			Compress:   true,
		},
	}
}

// setDefaults registers the default values on a Viper instance so they sit
// under every other configuration layer.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("store.path", defaults.Store.Path)
	v.SetDefault("ui.theme", defaults.UI.Theme)
	v.SetDefault("ui.no_color", defaults.UI.NoColor)
	v.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", defaults.Log.MaxBackups)
	v.SetDefault("log.max_age_days", defaults.Log.MaxAgeDays)
	v.SetDefault("log.compress", defaults.Log.Compress)
}
