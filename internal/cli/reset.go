// Package cli provides the command-line interface for docket.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	dkterrors "github.com/mrz1836/docket/internal/errors"
	"github.com/mrz1836/docket/internal/tui"
)

// AddResetCommand adds the reset command to the root command.
func AddResetCommand(root *cobra.Command, flags *GlobalFlags) {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all tasks and the data file",
		Long: `Delete the data file and clear every group. This cannot be undone, so a
confirmation prompt is shown unless --force (or --yes) is given.

Examples:
  docket reset            # Asks for confirmation
  docket reset --force    # No prompt`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReset(cmd.Context(), flags, os.Stdout, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	root.AddCommand(cmd)
}

// runReset executes the reset command.
func runReset(ctx context.Context, flags *GlobalFlags, w io.Writer, force bool) error {
	a, err := newApp(ctx, flags, w)
	if err != nil {
		return err
	}

	confirmed := force || flags.Yes
	if !confirmed {
		answer, confErr := tui.ConfirmWithConfig(
			"Delete ALL tasks and the data file? This cannot be undone.",
			false,
			tui.NewMenuConfig(tui.WithMenuTheme(a.theme)),
		)
		// A failed prompt counts as a decline.
		confirmed = confErr == nil && answer
	}

	err = a.manager.Reset(ctx, confirmed)
	switch {
	case err == nil:
	case stderrors.Is(err, dkterrors.ErrResetDeclined):
		a.out.Info("Reset canceled. Nothing was deleted.")
		return nil
	case stderrors.Is(err, dkterrors.ErrNoDataFile):
		a.out.Warning(dkterrors.UserMessage(err))
		return nil
	default:
		return err
	}

	if flags.Output == OutputJSON {
		return a.out.JSON(map[string]any{"reset": true})
	}

	a.out.Success("All tasks deleted")
	return nil
}
