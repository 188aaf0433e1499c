// Package cli provides the command-line interface for docket.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mrz1836/docket/internal/config"
	dkterrors "github.com/mrz1836/docket/internal/errors"
	"github.com/mrz1836/docket/internal/tui"
)

// AddThemeCommand adds the theme command to the root command.
func AddThemeCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Show or change the color theme",
		Long: `Without arguments, list the available themes and mark the active one.
With a theme name, switch to that theme and persist the choice to the
global config file.

Available themes: dracula, monokai, solarized.

Examples:
  docket theme
  docket theme monokai`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runThemeShow(cmd.Context(), flags, os.Stdout)
			}
			return runThemeSet(cmd.Context(), flags, os.Stdout, args[0])
		},
	}
	root.AddCommand(cmd)
}

// displayName renders a theme name for humans ("dracula" -> "Dracula").
func displayName(name string) string {
	return cases.Title(language.English).String(name)
}

// runThemeShow lists the available themes and marks the active one.
func runThemeShow(ctx context.Context, flags *GlobalFlags, w io.Writer) error {
	a, err := newApp(ctx, flags, w)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return a.out.JSON(map[string]any{
			"active": a.theme.Name,
			"themes": config.ThemeNames(),
		})
	}

	for _, theme := range tui.Themes() {
		marker := "  "
		if theme.Name == a.theme.Name {
			marker = "* "
		}
		a.out.Info(marker + displayName(theme.Name))
	}
	return nil
}

// runThemeSet switches the active theme and persists it to the global config.
func runThemeSet(ctx context.Context, flags *GlobalFlags, w io.Writer, name string) error {
	a, err := newApp(ctx, flags, w)
	if err != nil {
		return err
	}

	theme, err := tui.ThemeByName(name)
	if err != nil {
		return dkterrors.NewExitCode2Error(err)
	}

	a.cfg.UI.Theme = theme.Name
	if err := config.SaveGlobal(a.cfg, "docket theme"); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	if flags.Output == OutputJSON {
		return a.out.JSON(map[string]any{"active": theme.Name})
	}

	a.out.Success(fmt.Sprintf("Theme set to %s", displayName(theme.Name)))
	return nil
}
