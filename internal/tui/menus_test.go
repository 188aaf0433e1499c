package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dkterrors "github.com/mrz1836/docket/internal/errors"
)

func TestNewMenuConfig_Defaults(t *testing.T) {
	cfg := NewMenuConfig()
	assert.Equal(t, DefaultMenuWidth, cfg.Width)
	assert.Equal(t, "dracula", cfg.Theme.Name)
	assert.True(t, cfg.ShowKeyHints)
}

func TestNewMenuConfig_Options(t *testing.T) {
	cfg := NewMenuConfig(
		WithMenuTheme(SolarizedTheme),
		WithMenuWidth(60),
		WithMenuKeyHints(false),
	)
	assert.Equal(t, "solarized", cfg.Theme.Name)
	assert.Equal(t, 60, cfg.Width)
	assert.False(t, cfg.ShowKeyHints)
}

func TestNewMenuConfig_AccessibleEnv(t *testing.T) {
	t.Setenv("ACCESSIBLE", "1")
	cfg := NewMenuConfig()
	assert.True(t, cfg.Accessible)
}

func TestSelect_NoOptions(t *testing.T) {
	_, err := Select("pick one", nil)
	assert.ErrorIs(t, err, dkterrors.ErrNoMenuOptions)
}

// Menus require a terminal on stdin. Under go test there is none, so every
// interactive call must fail fast with ErrMenuCanceled instead of hanging.
func TestMenus_NoTerminal(t *testing.T) {
	t.Run("select", func(t *testing.T) {
		_, err := Select("pick one", []Option{{Label: "a", Value: "a"}})
		assert.ErrorIs(t, err, ErrMenuCanceled)
	})

	t.Run("confirm", func(t *testing.T) {
		_, err := Confirm("sure?", false)
		assert.ErrorIs(t, err, ErrMenuCanceled)
	})

	t.Run("input", func(t *testing.T) {
		_, err := Input("name", "")
		assert.ErrorIs(t, err, ErrMenuCanceled)
	})

	t.Run("validated input", func(t *testing.T) {
		_, err := InputWithValidation("name", "", func(string) error { return nil })
		assert.ErrorIs(t, err, ErrMenuCanceled)
	})
}

func TestAdaptWidth(t *testing.T) {
	// Without a terminal, adaptWidth falls back to the max width.
	width := adaptWidth(70)
	assert.Equal(t, 70, width)

	width = adaptWidth(0)
	require.Positive(t, width)
	assert.Equal(t, DefaultMenuWidth, width)
}
