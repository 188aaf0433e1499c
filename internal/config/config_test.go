package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/docket/internal/config"
	"github.com/mrz1836/docket/internal/constants"
	dkterrors "github.com/mrz1836/docket/internal/errors"
)

// setTestHome points DOCKET_HOME at a temp dir and runs tests from another
// temp dir so no real global or project config leaks in.
func setTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("DOCKET_HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Empty(t, cfg.Store.Path, "store path defaults to the docket home resolution")
	assert.Equal(t, constants.DefaultTheme, cfg.UI.Theme)
	assert.False(t, cfg.UI.NoColor)
	assert.Equal(t, constants.LogMaxSizeMB, cfg.Log.MaxSizeMB)
	assert.True(t, cfg.Log.Compress)

	require.NoError(t, config.Validate(cfg), "defaults must validate")
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("no config files yields defaults", func(t *testing.T) {
		setTestHome(t)

		cfg, err := config.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultTheme, cfg.UI.Theme)
	})

	t.Run("global config overrides defaults", func(t *testing.T) {
		home := setTestHome(t)
		writeYAML(t, filepath.Join(home, "config.yaml"), "ui:\n  theme: monokai\n")

		cfg, err := config.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "monokai", cfg.UI.Theme)
	})

	t.Run("project config overrides global", func(t *testing.T) {
		home := setTestHome(t)
		writeYAML(t, filepath.Join(home, "config.yaml"), "ui:\n  theme: monokai\n")
		writeYAML(t, ".docket.yaml", "ui:\n  theme: solarized\n")

		cfg, err := config.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "solarized", cfg.UI.Theme)
	})

	t.Run("environment overrides project config", func(t *testing.T) {
		setTestHome(t)
		writeYAML(t, ".docket.yaml", "ui:\n  theme: solarized\n")
		t.Setenv("DOCKET_UI_THEME", "monokai")

		cfg, err := config.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "monokai", cfg.UI.Theme)
	})

	t.Run("store path can come from the environment", func(t *testing.T) {
		setTestHome(t)
		t.Setenv("DOCKET_STORE_PATH", "/tmp/elsewhere.json")

		cfg, err := config.Load(ctx)
		require.NoError(t, err)

		path, err := cfg.Store.ResolvePath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/elsewhere.json", path)
	})

	t.Run("unknown theme fails validation", func(t *testing.T) {
		home := setTestHome(t)
		writeYAML(t, filepath.Join(home, "config.yaml"), "ui:\n  theme: neon\n")

		_, err := config.Load(ctx)
		require.ErrorIs(t, err, dkterrors.ErrUnknownTheme)
	})

	t.Run("malformed global config fails loudly", func(t *testing.T) {
		home := setTestHome(t)
		writeYAML(t, filepath.Join(home, "config.yaml"), "ui: [not a mapping\n")

		_, err := config.Load(ctx)
		require.Error(t, err)
	})
}

func TestResolvePath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		cfg := config.StoreConfig{Path: "/data/tasks.json"}
		path, err := cfg.ResolvePath()
		require.NoError(t, err)
		assert.Equal(t, "/data/tasks.json", path)
	})

	t.Run("empty path resolves under the docket home", func(t *testing.T) {
		home := setTestHome(t)
		cfg := config.StoreConfig{}
		path, err := cfg.ResolvePath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, constants.StoreFileName), path)
	})
}

func TestThemeValidation(t *testing.T) {
	t.Run("all shipped themes validate", func(t *testing.T) {
		for _, name := range config.ThemeNames() {
			assert.True(t, config.IsValidTheme(name), "expected %q to be valid", name)
		}
	})

	t.Run("unknown names do not validate", func(t *testing.T) {
		assert.False(t, config.IsValidTheme("neon"))
		assert.False(t, config.IsValidTheme(""))
		assert.False(t, config.IsValidTheme("Dracula"), "theme names are case-sensitive")
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects broken log rotation settings", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Log.MaxSizeMB = 0
		require.Error(t, config.Validate(cfg))

		cfg = config.DefaultConfig()
		cfg.Log.MaxBackups = -1
		require.Error(t, config.Validate(cfg))

		cfg = config.DefaultConfig()
		cfg.Log.MaxAgeDays = -1
		require.Error(t, config.Validate(cfg))
	})
}

func TestSaveGlobal(t *testing.T) {
	t.Run("writes a readable config with header comment", func(t *testing.T) {
		home := setTestHome(t)

		cfg := config.DefaultConfig()
		cfg.UI.Theme = "monokai"
		require.NoError(t, config.SaveGlobal(cfg, "docket theme"))

		data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "# docket configuration")
		assert.Contains(t, string(data), "# docket theme on ")
		assert.Contains(t, string(data), "theme: monokai")
	})

	t.Run("saved config round-trips through Load", func(t *testing.T) {
		setTestHome(t)

		cfg := config.DefaultConfig()
		cfg.UI.Theme = "solarized"
		require.NoError(t, config.SaveGlobal(cfg, "test"))

		loaded, err := config.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "solarized", loaded.UI.Theme)
	})

	t.Run("backs up an existing config", func(t *testing.T) {
		home := setTestHome(t)

		require.NoError(t, config.SaveGlobal(config.DefaultConfig(), "first"))
		cfg := config.DefaultConfig()
		cfg.UI.Theme = "monokai"
		require.NoError(t, config.SaveGlobal(cfg, "second"))

		entries, err := os.ReadDir(home)
		require.NoError(t, err)

		backups := 0
		for _, e := range entries {
			if filepath.Ext(e.Name()) == ".bak" {
				backups++
			}
		}
		assert.Equal(t, 1, backups, "second save backs up the first")
	})

	t.Run("refuses to save an invalid config", func(t *testing.T) {
		setTestHome(t)

		cfg := config.DefaultConfig()
		cfg.UI.Theme = "neon"
		require.ErrorIs(t, config.SaveGlobal(cfg, "test"), dkterrors.ErrUnknownTheme)
	})
}

// writeYAML writes a config file, creating parent directories as needed.
func writeYAML(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
