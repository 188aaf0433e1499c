// Package cli provides the command-line interface for docket.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	dkterrors "github.com/mrz1836/docket/internal/errors"
	"github.com/mrz1836/docket/internal/task"
	"github.com/mrz1836/docket/internal/tui"
)

// promptDoneWord ends the interactive description loop.
const promptDoneWord = "done"

// AddAddCommand adds the add command to the root command.
func AddAddCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "add <group> [description]...",
		Short: "Add tasks to a group",
		Long: `Add one or more tasks to a group. The group is created on first use.

The batch is atomic: if any description is invalid, no task is added.
Descriptions longer than 200 characters or containing a URL are rejected.

With no descriptions on a terminal, docket prompts for them one at a
time; enter "done" to finish.

Examples:
  docket add chores "buy milk"
  docket add chores "buy milk" "walk dog" "water plants"
  docket add chores`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.Context(), flags, os.Stdout, args[0], args[1:])
		},
	}
	root.AddCommand(cmd)
}

// runAdd executes the add command.
func runAdd(ctx context.Context, flags *GlobalFlags, w io.Writer, group string, descriptions []string) error {
	a, err := newApp(ctx, flags, w)
	if err != nil {
		return err
	}

	if len(descriptions) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return dkterrors.NewExitCode2Error(
				fmt.Errorf("%w: descriptions required without a terminal", dkterrors.ErrEmptyBatch))
		}
		descriptions, err = a.promptDescriptions()
		if err != nil {
			if stderrors.Is(err, tui.ErrMenuCanceled) {
				a.out.Info("Nothing added.")
				return nil
			}
			return err
		}
		if len(descriptions) == 0 {
			a.out.Info("Nothing added.")
			return nil
		}
	}

	tasks, err := a.manager.AddTasks(ctx, group, descriptions)
	switch {
	case err == nil:
	case stderrors.Is(err, dkterrors.ErrPersistFailed):
		// The tasks exist in memory; only the write was lost.
		a.warnPersistFailure(err)
	default:
		return err
	}

	if flags.Output == OutputJSON {
		return a.out.JSON(map[string]any{
			"group": group,
			"added": len(descriptions),
			"tasks": tasks,
		})
	}

	word := "tasks"
	if len(descriptions) == 1 {
		word = "task"
	}
	a.out.Success(fmt.Sprintf("Added %d %s to %q", len(descriptions), word, group))
	return nil
}

// promptDescriptions collects descriptions interactively until the user
// enters "done". Each entry is pre-validated so a bad one is re-asked
// instead of failing the whole batch later.
func (a *app) promptDescriptions() ([]string, error) {
	var descriptions []string
	cfg := tui.NewMenuConfig(tui.WithMenuTheme(a.theme))

	for {
		entry, err := tui.InputWithValidationConfig(
			fmt.Sprintf("Description %d (or %q to finish)", len(descriptions)+1, promptDoneWord),
			"",
			validateDescriptionEntry,
			cfg,
		)
		if err != nil {
			return nil, err
		}
		if entry == promptDoneWord {
			return descriptions, nil
		}
		descriptions = append(descriptions, entry)
	}
}

// validateDescriptionEntry accepts the finish word or any valid description.
func validateDescriptionEntry(s string) error {
	if s == promptDoneWord {
		return nil
	}
	if s == "" {
		return fmt.Errorf("%w: empty description", dkterrors.ErrInvalidDescription)
	}
	if !task.ValidDescription(s) {
		return fmt.Errorf("%w: at most 200 characters, no URLs", dkterrors.ErrInvalidDescription)
	}
	return nil
}
