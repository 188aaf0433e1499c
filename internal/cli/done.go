// Package cli provides the command-line interface for docket.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	dkterrors "github.com/mrz1836/docket/internal/errors"
)

// AddDoneCommand adds the done command to the root command.
func AddDoneCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "done <group> <ids>...",
		Short: "Mark tasks as completed",
		Long: `Mark one or more tasks as completed by id. Ids are comma-separated and
parsed strictly: a non-numeric entry aborts the whole command.

Ids that don't exist in the group are silently ignored. When the last open
task is completed, docket offers to delete the finished group.

Examples:
  docket done chores 1
  docket done chores 1,3,4
  docket done chores 1 3 4`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(cmd.Context(), flags, os.Stdout, args[0], strings.Join(args[1:], ","))
		},
	}
	root.AddCommand(cmd)
}

// runDone executes the done command.
func runDone(ctx context.Context, flags *GlobalFlags, w io.Writer, group, ids string) error {
	a, err := newApp(ctx, flags, w)
	if err != nil {
		return err
	}

	err = a.manager.MarkComplete(ctx, group, ids)
	switch {
	case err == nil:
	case stderrors.Is(err, dkterrors.ErrGroupNotFound):
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
			"ids":   ids,
		})
	}

	a.out.Success(fmt.Sprintf("Marked %s done in %q", ids, group))
	return nil
}
