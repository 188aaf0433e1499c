package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/docket/internal/constants"
	"github.com/mrz1836/docket/internal/errors"
)

// newViperInstance creates a Viper instance with the standard docket
// configuration: defaults, DOCKET_ environment prefix, and a key replacer so
// DOCKET_UI_THEME maps to ui.theme.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// viperDecoderOption returns the decoder configuration used when
// unmarshaling into Config. Hooks cover the conversions config files
// commonly need (duration strings, comma-separated lists).
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. Missing config files are expected, not failures.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper
// precedence. Configuration is loaded in the following order (highest
// precedence first):
//  1. Environment variables (DOCKET_* prefix)
//  2. Project config (./.docket.yaml)
//  3. Global config (~/.docket/config.yaml)
//  4. Built-in defaults
//
// CLI flag overrides are the CLI layer's concern; it mutates the returned
// Config directly.
//
// The function returns an error only for actual configuration problems, not
// for missing config files (which are expected in many scenarios).
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	// Global config first (lower precedence), project config merged on top.
	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("ui.theme", cfg.UI.Theme).
		Str("store.path", cfg.Store.Path).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// loadGlobalConfig attempts to load the global config file
// (~/.docket/config.yaml). Returns nil if the file doesn't exist or the home
// directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return nil //nolint:nilerr // No home directory means no global config; not an error
	}
	if _, err := os.Stat(path); err != nil {
		return nil //nolint:nilerr // Missing global config is expected
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig attempts to merge the project config file (./.docket.yaml)
// over whatever is already loaded. Returns nil if no project config exists.
func loadProjectConfig(v *viper.Viper) error {
	path := ProjectConfigPath()
	if _, err := os.Stat(path); err != nil {
		return nil //nolint:nilerr // Missing project config is expected
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}
