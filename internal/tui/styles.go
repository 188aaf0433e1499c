// Package tui provides terminal user interface components for docket.
//
// This package provides a centralized style system using Lip Gloss for
// consistent TUI component styling. Colors come from a named Theme so the
// whole interface re-skins when the user switches themes.
//
// # Themes
//
// Three built-in themes are available: dracula (default), monokai, and
// solarized. Each maps five semantic roles to concrete colors:
//   - Primary: active states, group names, primary actions
//   - Success: completed tasks
//   - Warning: soft failures, attention required
//   - Error: rejected input, failed operations
//   - Muted: dim/inactive states, secondary text
//
// # NO_COLOR Support
//
// Call CheckNoColor() at the start of commands to respect the NO_COLOR
// environment variable. Colors are also disabled when TERM=dumb.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mrz1836/docket/internal/constants"
	dkterrors "github.com/mrz1836/docket/internal/errors"
)

// Theme maps the five semantic color roles to concrete colors.
// All colors use AdaptiveColor for light/dark terminal support.
type Theme struct {
	Name    string
	Primary lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
}

//nolint:gochecknoglobals // Intentional package-level theme definitions
var (
	// DraculaTheme is the default theme, based on the Dracula palette.
	DraculaTheme = Theme{
		Name:    constants.ThemeDracula,
		Primary: lipgloss.AdaptiveColor{Light: "#7D56C2", Dark: "#BD93F9"},
		Success: lipgloss.AdaptiveColor{Light: "#2E9E4F", Dark: "#50FA7B"},
		Warning: lipgloss.AdaptiveColor{Light: "#B0722A", Dark: "#FFB86C"},
		Error:   lipgloss.AdaptiveColor{Light: "#C62F2F", Dark: "#FF5555"},
		Muted:   lipgloss.AdaptiveColor{Light: "#6272A4", Dark: "#6272A4"},
	}

	// MonokaiTheme is based on the Monokai palette.
	MonokaiTheme = Theme{
		Name:    constants.ThemeMonokai,
		Primary: lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#66D9EF"},
		Success: lipgloss.AdaptiveColor{Light: "#5F8700", Dark: "#A6E22E"},
		Warning: lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FD971F"},
		Error:   lipgloss.AdaptiveColor{Light: "#C2185B", Dark: "#F92672"},
		Muted:   lipgloss.AdaptiveColor{Light: "#75715E", Dark: "#75715E"},
	}

	// SolarizedTheme is based on the Solarized palette.
	SolarizedTheme = Theme{
		Name:    constants.ThemeSolarized,
		Primary: lipgloss.AdaptiveColor{Light: "#268BD2", Dark: "#268BD2"},
		Success: lipgloss.AdaptiveColor{Light: "#859900", Dark: "#859900"},
		Warning: lipgloss.AdaptiveColor{Light: "#B58900", Dark: "#B58900"},
		Error:   lipgloss.AdaptiveColor{Light: "#DC322F", Dark: "#DC322F"},
		Muted:   lipgloss.AdaptiveColor{Light: "#586E75", Dark: "#586E75"},
	}
)

// Themes returns all built-in themes in display order.
func Themes() []Theme {
	return []Theme{DraculaTheme, MonokaiTheme, SolarizedTheme}
}

// ThemeByName returns the theme with the given name.
// Returns ErrUnknownTheme if no theme matches.
func ThemeByName(name string) (Theme, error) {
	for _, t := range Themes() {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", dkterrors.ErrUnknownTheme, name)
}

// DefaultTheme returns the theme used when no preference is configured.
func DefaultTheme() Theme {
	return DraculaTheme
}

// OutputStyles holds common output styles derived from a theme.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
	Header  lipgloss.Style
}

// NewOutputStyles creates common output styles from the given theme.
func NewOutputStyles(theme Theme) *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),
		Info: lipgloss.NewStyle().
			Foreground(theme.Primary),
		Dim: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// HuhTheme returns a custom Huh theme using the given docket theme colors.
// Uses AdaptiveColor for proper light/dark terminal support.
func HuhTheme(theme Theme) *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(theme.Primary)
	t.Focused.Title = t.Focused.Title.Foreground(theme.Primary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(theme.Primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(theme.Primary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(theme.Primary)

	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(theme.Success)

	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(theme.Error)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(theme.Error)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(theme.Muted)
	t.Blurred.Title = t.Blurred.Title.Foreground(theme.Muted)
	t.Focused.Description = t.Focused.Description.Foreground(theme.Muted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(theme.Muted)

	return t
}

// Task status icons. Triple redundancy is maintained for status displays:
// icon + color + text.
const (
	// IconDone marks a completed task.
	IconDone = "✓"
	// IconOpen marks an open task.
	IconOpen = "○"
)

// StatusIcon returns the icon for a task's completion state.
func StatusIcon(completed bool) string {
	if completed {
		return IconDone
	}
	return IconOpen
}
