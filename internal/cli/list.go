// Package cli provides the command-line interface for docket.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/docket/internal/domain"
	dkterrors "github.com/mrz1836/docket/internal/errors"
	"github.com/mrz1836/docket/internal/tui"
)

// AddListCommand adds the list command to the root command.
func AddListCommand(root *cobra.Command, flags *GlobalFlags) {
	var watch bool

	cmd := &cobra.Command{
		Use:   "list [group]",
		Short: "List tasks",
		Long: `Display task groups as styled tables. Without arguments every group is
shown, sorted by name. With a group argument only that group is shown.

With --watch the view refreshes every two seconds and picks up edits made
by other docket processes. Press q to quit.

Examples:
  docket list                 # All groups
  docket list chores          # One group
  docket list --watch         # Live view
  docket list --output json   # Machine-readable`,
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := ""
			if len(args) > 0 {
				group = args[0]
			}
			return runList(cmd.Context(), flags, os.Stdout, group, watch)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "refresh the view continuously")

	root.AddCommand(cmd)
}

// runList executes the list command.
func runList(ctx context.Context, flags *GlobalFlags, w io.Writer, group string, watch bool) error {
	a, err := newApp(ctx, flags, w)
	if err != nil {
		return err
	}

	if watch {
		return runListWatch(ctx, a, group)
	}

	groups, err := a.manager.Groups(ctx)
	if err != nil {
		return err
	}

	if group != "" {
		tasks, ok := groups[group]
		if !ok {
			a.out.Warning(fmt.Sprintf("%v: %q", dkterrors.ErrGroupNotFound, group))
			return nil
		}
		groups = domain.Groups{group: tasks}
	}

	if flags.Output == OutputJSON {
		return a.out.JSON(groups)
	}

	table := tui.NewGroupTable(a.theme)
	return table.RenderGroups(w, groups)
}

// runListWatch starts the live view, reloading from disk on every tick so
// changes from other processes show up.
func runListWatch(ctx context.Context, a *app, group string) error {
	loader := func(ctx context.Context) (domain.Groups, error) {
		if err := a.manager.Load(ctx); err != nil && !stderrors.Is(err, dkterrors.ErrStoreCorrupted) {
			return nil, err
		}
		groups, err := a.manager.Groups(ctx)
		if err != nil {
			return nil, err
		}
		if group == "" {
			return groups, nil
		}
		tasks, ok := groups[group]
		if !ok {
			return domain.Groups{}, nil
		}
		return domain.Groups{group: tasks}, nil
	}

	return tui.RunWatch(ctx, loader, tui.DefaultWatchConfig(a.theme))
}
