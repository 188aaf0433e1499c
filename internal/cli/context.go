// Package cli provides the command-line interface for docket.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mrz1836/docket/internal/config"
	dkterrors "github.com/mrz1836/docket/internal/errors"
	"github.com/mrz1836/docket/internal/task"
	"github.com/mrz1836/docket/internal/tui"
)

// app bundles the dependencies a command needs: resolved config, the task
// manager bound to the data file, and themed output.
type app struct {
	cfg     *config.Config
	theme   tui.Theme
	manager *task.Manager
	out     tui.Output
	flags   *GlobalFlags
}

// newApp loads configuration, resolves the store path, and builds the task
// manager. The store is loaded eagerly; a corrupted data file is reported as
// a warning and the command proceeds against an empty list so the user can
// rebuild or reset.
func newApp(ctx context.Context, flags *GlobalFlags, w io.Writer) (*app, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := GetLogger()

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	theme := resolveTheme(cfg, flags)

	storePath := flags.File
	if storePath == "" {
		storePath, err = cfg.Store.ResolvePath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data file path: %w", err)
		}
	}

	out := tui.NewOutput(w, flags.Output, theme)

	store := task.NewFileStore(storePath)
	manager := task.NewManager(store,
		task.WithLogger(logger),
		task.WithConfirm(confirmFunc(flags, theme)),
	)

	if err := manager.Load(ctx); err != nil {
		// A corrupted file is recoverable: start from an empty list and
		// let the user decide whether to reset or restore.
		msg, action := dkterrors.Actionable(err)
		out.Warning(msg)
		if action != "" {
			out.Hint(action)
		}
		logger.Warn().Err(err).Str("path", storePath).Msg("data file load failed")
	}

	return &app{
		cfg:     cfg,
		theme:   theme,
		manager: manager,
		out:     out,
		flags:   flags,
	}, nil
}

// resolveTheme picks the active theme from config, falling back to the
// default when the configured name is unknown. NO_COLOR handling is applied
// as a side effect.
func resolveTheme(cfg *config.Config, flags *GlobalFlags) tui.Theme {
	if flags.NoColor || cfg.UI.NoColor {
		// Same effect as the NO_COLOR env var: downgrade to ASCII.
		_ = os.Setenv("NO_COLOR", "1")
	}
	tui.CheckNoColor()

	theme, err := tui.ThemeByName(cfg.UI.Theme)
	if err != nil {
		return tui.DefaultTheme()
	}
	return theme
}

// confirmFunc builds the confirmation callback handed to the task manager.
// With --yes every prompt is answered affirmatively; otherwise the user is
// asked interactively. Without a terminal the prompt fails, which the
// manager treats as a decline.
func confirmFunc(flags *GlobalFlags, theme tui.Theme) task.ConfirmFunc {
	return func(ctx context.Context, message string) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if flags.Yes {
			return true, nil
		}
		return tui.ConfirmWithConfig(message, false, tui.NewMenuConfig(tui.WithMenuTheme(theme)))
	}
}

// reportError prints err through the themed output with an actionable hint
// when one is known.
func (a *app) reportError(err error) {
	a.out.Error(err)
	if _, action := dkterrors.Actionable(err); action != "" {
		a.out.Hint(action)
	}
}

// warnPersistFailure reports a failed save without failing the command.
// The in-memory change already happened; only the write was lost.
func (a *app) warnPersistFailure(err error) {
	a.out.Warning(dkterrors.UserMessage(err))
	logger := GetLogger()
	logger.Warn().Err(err).Msg("persist failed, changes kept in memory only")
}
