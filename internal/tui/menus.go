// Package tui provides terminal user interface components for docket.
//
// This file provides the interactive menu system using Charm Huh for
// consistent interfaces at all user decision points.
//
// # Interactive Menu Functions
//
// Three primary functions are provided for user interaction:
//   - Select: Single selection from a list of options
//   - Confirm: Yes/no confirmation prompts
//   - Input: Single-line text input
//
// All menus use the active theme from styles.go via HuhTheme.
//
// # Keyboard Navigation
//
// Menus support standard navigation: arrow keys, Enter to select, q/Esc
// to cancel. Key hints are displayed at the bottom of menus when enabled.
package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	dkterrors "github.com/mrz1836/docket/internal/errors"
)

// Terminal layout constants.
const (
	// TerminalEdgeMargin is the number of characters to leave between
	// menu content and the terminal edge for visual padding.
	TerminalEdgeMargin = 4

	// MinMenuWidth is the minimum usable width for menu content.
	// Menus narrower than this become difficult to read and use.
	MinMenuWidth = 40

	// DefaultMenuWidth is the default maximum width for menus.
	DefaultMenuWidth = 80
)

// ErrMenuCanceled is an alias for errors.ErrMenuCanceled for package-local use.
// Returns when the user cancels a menu operation by pressing q or Escape.
var ErrMenuCanceled = dkterrors.ErrMenuCanceled

// Option represents a selectable menu option.
type Option struct {
	// Label is the display text shown to the user.
	Label string
	// Description is optional help text shown below the label.
	Description string
	// Value is the value returned when this option is selected.
	Value string
}

// MenuConfig holds configuration for menu components.
type MenuConfig struct {
	// Theme selects the color theme for the menu.
	Theme Theme
	// Width is the maximum width for the menu. If 0, adapts to terminal width.
	Width int
	// Accessible enables accessible mode for screen readers.
	Accessible bool
	// ShowKeyHints controls whether key hints are displayed.
	ShowKeyHints bool
}

// MenuConfigOption is a functional option for configuring MenuConfig.
type MenuConfigOption func(*MenuConfig)

// WithMenuTheme sets the menu color theme.
func WithMenuTheme(theme Theme) MenuConfigOption {
	return func(c *MenuConfig) {
		c.Theme = theme
	}
}

// WithMenuWidth sets the menu width.
func WithMenuWidth(width int) MenuConfigOption {
	return func(c *MenuConfig) {
		c.Width = width
	}
}

// WithMenuKeyHints enables or disables key hints display.
func WithMenuKeyHints(show bool) MenuConfigOption {
	return func(c *MenuConfig) {
		c.ShowKeyHints = show
	}
}

// NewMenuConfig creates a MenuConfig with sensible defaults.
// It automatically detects accessible mode from the ACCESSIBLE environment
// variable. Use functional options to customize:
// NewMenuConfig(WithMenuTheme(theme), WithMenuWidth(60))
func NewMenuConfig(opts ...MenuConfigOption) *MenuConfig {
	_, accessible := os.LookupEnv("ACCESSIBLE")

	c := &MenuConfig{
		Theme:        DefaultTheme(),
		Width:        DefaultMenuWidth,
		Accessible:   accessible,
		ShowKeyHints: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// adaptWidth returns an appropriate menu width based on terminal size.
// It respects the maxWidth constraint while adapting to narrower terminals.
func adaptWidth(maxWidth int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		if maxWidth <= 0 {
			return DefaultMenuWidth
		}
		return maxWidth
	}

	availableWidth := width - TerminalEdgeMargin

	if maxWidth > 0 && maxWidth < availableWidth {
		return maxWidth
	}

	if availableWidth < MinMenuWidth {
		return MinMenuWidth
	}

	return availableWidth
}

// runFormWithConfig creates and runs a form with the given field and config.
// It handles common setup (theme, width, accessibility) and error handling.
// The errorContext parameter is used to wrap errors with descriptive context.
func runFormWithConfig(field huh.Field, cfg *MenuConfig, errorContext string) error {
	// Without a terminal on stdin the form would hang; fail fast so
	// tests and scripted invocations get a clean error instead.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrMenuCanceled
	}

	CheckNoColor()

	width := adaptWidth(cfg.Width)

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(HuhTheme(cfg.Theme)).
		WithWidth(width).
		WithAccessible(cfg.Accessible).
		WithShowHelp(cfg.ShowKeyHints)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrMenuCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}

	return nil
}

// Select presents a single-selection menu and returns the selected value.
// Returns ErrMenuCanceled if the user presses q or Esc.
func Select(title string, options []Option) (string, error) {
	return SelectWithConfig(title, options, NewMenuConfig())
}

// SelectWithConfig presents a single-selection menu with custom configuration.
func SelectWithConfig(title string, options []Option, cfg *MenuConfig) (string, error) {
	if len(options) == 0 {
		return "", dkterrors.ErrNoMenuOptions
	}

	// Huh doesn't support option-level descriptions natively, so the
	// description is folded into the label when present.
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		label := opt.Label
		if opt.Description != "" {
			label = opt.Label + " - " + opt.Description
		}
		huhOptions[i] = huh.NewOption(label, opt.Value)
	}

	var selected string

	selectField := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected)

	if err := runFormWithConfig(selectField, cfg, "select menu failed"); err != nil {
		return "", err
	}

	return selected, nil
}

// Confirm presents a yes/no confirmation prompt.
// Returns the user's choice or ErrMenuCanceled if canceled.
func Confirm(message string, defaultYes bool) (bool, error) {
	return ConfirmWithConfig(message, defaultYes, NewMenuConfig())
}

// ConfirmWithConfig presents a confirmation prompt with custom configuration.
func ConfirmWithConfig(message string, defaultYes bool, cfg *MenuConfig) (bool, error) {
	confirmed := defaultYes

	confirmField := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runFormWithConfig(confirmField, cfg, "confirm prompt failed"); err != nil {
		return false, err
	}

	return confirmed, nil
}

// Input presents a single-line text input prompt.
// Returns the entered text or ErrMenuCanceled if canceled.
func Input(prompt, defaultValue string) (string, error) {
	return InputWithConfig(prompt, defaultValue, NewMenuConfig())
}

// InputWithConfig presents an input prompt with custom configuration.
func InputWithConfig(prompt, defaultValue string, cfg *MenuConfig) (string, error) {
	value := defaultValue

	inputField := huh.NewInput().
		Title(prompt).
		Value(&value)

	if err := runFormWithConfig(inputField, cfg, "input prompt failed"); err != nil {
		return "", err
	}

	return value, nil
}

// InputWithValidation presents an input prompt with a validation function.
// The form re-prompts until the validator accepts the value or the user
// cancels.
func InputWithValidation(prompt, defaultValue string, validate func(string) error) (string, error) {
	return InputWithValidationConfig(prompt, defaultValue, validate, NewMenuConfig())
}

// InputWithValidationConfig presents a validated input prompt with custom config.
func InputWithValidationConfig(prompt, defaultValue string, validate func(string) error, cfg *MenuConfig) (string, error) {
	value := defaultValue

	inputField := huh.NewInput().
		Title(prompt).
		Value(&value).
		Validate(validate)

	if err := runFormWithConfig(inputField, cfg, "validated input prompt failed"); err != nil {
		return "", err
	}

	return value, nil
}
