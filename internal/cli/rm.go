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

// AddRmCommand adds the rm command to the root command.
func AddRmCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "rm <group> <ids>...",
		Short: "Delete tasks from a group",
		Long: `Delete one or more tasks by id. Ids are comma-separated and parsed
leniently: non-numeric entries are skipped instead of failing.

When the last task is deleted, docket offers to delete the empty group.

Examples:
  docket rm chores 2
  docket rm chores 1,2,junk,3
  docket rm chores 1 2 3`,
		Aliases: []string{"delete"},
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(cmd.Context(), flags, os.Stdout, args[0], strings.Join(args[1:], ","))
		},
	}
	root.AddCommand(cmd)
}

// runRm executes the rm command.
func runRm(ctx context.Context, flags *GlobalFlags, w io.Writer, group, ids string) error {
	a, err := newApp(ctx, flags, w)
	if err != nil {
		return err
	}

	err = a.manager.DeleteTasks(ctx, group, ids)
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

	a.out.Success(fmt.Sprintf("Deleted %s from %q", ids, group))
	return nil
}
