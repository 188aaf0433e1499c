// Package cli provides the command-line interface for docket.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	dkterrors "github.com/mrz1836/docket/internal/errors"
	"github.com/mrz1836/docket/internal/tui"
)

// AddEditCommand adds the edit command to the root command.
func AddEditCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "edit <group> <id> [description]",
		Short: "Edit a task's description",
		Long: `Replace the description of one task, keeping its id and completion state.

The new description is validated the same way as add: at most 200 characters
and no embedded URL. When the description is omitted on a terminal,
docket prompts for it.

Examples:
  docket edit chores 2 "walk the dog twice"
  docket edit chores 2`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil || id < 1 {
				return dkterrors.NewExitCode2Error(fmt.Errorf("%w: %q", dkterrors.ErrInvalidTaskID, args[1]))
			}

			description := ""
			haveDescription := len(args) == 3
			if haveDescription {
				description = args[2]
			} else if !term.IsTerminal(int(os.Stdin.Fd())) {
				return dkterrors.NewExitCode2Error(
					fmt.Errorf("%w: description required without a terminal", dkterrors.ErrInvalidDescription))
			}

			return runEdit(cmd.Context(), flags, os.Stdout, args[0], id, description, haveDescription)
		},
	}
	root.AddCommand(cmd)
}

// runEdit executes the edit command. With haveDescription false the new
// description is collected interactively.
func runEdit(ctx context.Context, flags *GlobalFlags, w io.Writer, group string, id int, description string, haveDescription bool) error {
	a, err := newApp(ctx, flags, w)
	if err != nil {
		return err
	}

	if !haveDescription {
		description, err = tui.InputWithValidationConfig(
			fmt.Sprintf("New description for task %d in %q", id, group),
			"",
			validateDescriptionEntry,
			tui.NewMenuConfig(tui.WithMenuTheme(a.theme)),
		)
		if err != nil {
			if stderrors.Is(err, tui.ErrMenuCanceled) {
				a.out.Info("Nothing changed.")
				return nil
			}
			return err
		}
	}

	err = a.manager.EditTask(ctx, group, id, description)
	switch {
	case err == nil:
	case stderrors.Is(err, dkterrors.ErrGroupNotFound), stderrors.Is(err, dkterrors.ErrTaskNotFound):
		// Editing something that isn't there is a no-op, not a failure.
		a.out.Warning(err.Error())
		return nil
	case stderrors.Is(err, dkterrors.ErrPersistFailed):
		a.warnPersistFailure(err)
	default:
		return err
	}

	if flags.Output == OutputJSON {
		return a.out.JSON(map[string]any{
			"group": group,
			"id":    id,
		})
	}

	a.out.Success(fmt.Sprintf("Updated task %d in %q", id, group))
	return nil
}
