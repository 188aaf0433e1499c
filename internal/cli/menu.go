// Package cli provides the command-line interface for docket.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/docket/internal/config"
	dkterrors "github.com/mrz1836/docket/internal/errors"
	"github.com/mrz1836/docket/internal/task"
	"github.com/mrz1836/docket/internal/tui"
)

// Menu action values.
const (
	menuActionList  = "list"
	menuActionAdd   = "add"
	menuActionEdit  = "edit"
	menuActionDone  = "done"
	menuActionRm    = "rm"
	menuActionTheme = "theme"
	menuActionReset = "reset"
	menuActionQuit  = "quit"
)

// AddMenuCommand adds the menu command to the root command.
func AddMenuCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu",
		Long: `Run docket as an interactive menu. Every operation available from the
subcommands can be driven from here with prompts instead of arguments.

The menu loops until you pick Quit or press q/Esc.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd.Context(), flags, os.Stdout)
		},
	}
	root.AddCommand(cmd)
}

// runMenu executes the interactive menu loop.
func runMenu(ctx context.Context, flags *GlobalFlags, w io.Writer) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return dkterrors.ErrNonInteractiveMode
	}

	a, err := newApp(ctx, flags, w)
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := tui.SelectWithConfig("What would you like to do?", menuOptions(),
			tui.NewMenuConfig(tui.WithMenuTheme(a.theme)))
		if err != nil {
			if stderrors.Is(err, tui.ErrMenuCanceled) {
				return nil
			}
			return err
		}

		if action == menuActionQuit {
			return nil
		}

		if err := a.runMenuAction(ctx, w, action); err != nil {
			if stderrors.Is(err, tui.ErrMenuCanceled) {
				continue
			}
			// Keep the loop alive; show the problem and re-prompt.
			a.reportError(err)
		}
	}
}

// menuOptions returns the top-level menu entries.
func menuOptions() []tui.Option {
	return []tui.Option{
		{Label: "List tasks", Description: "show all groups", Value: menuActionList},
		{Label: "Add tasks", Description: "add tasks to a group", Value: menuActionAdd},
		{Label: "Edit task", Description: "change a description", Value: menuActionEdit},
		{Label: "Mark done", Description: "complete tasks by id", Value: menuActionDone},
		{Label: "Delete tasks", Description: "remove tasks by id", Value: menuActionRm},
		{Label: "Switch theme", Description: "change the color theme", Value: menuActionTheme},
		{Label: "Reset", Description: "delete everything", Value: menuActionReset},
		{Label: "Quit", Value: menuActionQuit},
	}
}

// runMenuAction dispatches one selected menu action.
func (a *app) runMenuAction(ctx context.Context, w io.Writer, action string) error {
	switch action {
	case menuActionList:
		groups, err := a.manager.Groups(ctx)
		if err != nil {
			return err
		}
		return tui.NewGroupTable(a.theme).RenderGroups(w, groups)

	case menuActionAdd:
		return a.menuAdd(ctx)

	case menuActionEdit:
		return a.menuEdit(ctx)

	case menuActionDone:
		return a.menuDone(ctx)

	case menuActionRm:
		return a.menuRm(ctx)

	case menuActionTheme:
		return a.menuTheme()

	case menuActionReset:
		return a.menuReset(ctx)

	default:
		return fmt.Errorf("unknown command %q", action)
	}
}

// promptGroup asks the user to pick an existing group.
func (a *app) promptGroup(ctx context.Context) (string, error) {
	groups, err := a.manager.Groups(ctx)
	if err != nil {
		return "", err
	}

	names := groups.Names()
	if len(names) == 0 {
		return "", dkterrors.ErrGroupNotFound
	}

	options := make([]tui.Option, 0, len(names))
	for _, name := range names {
		options = append(options, tui.Option{
			Label: tui.GroupSummary(name, groups[name]),
			Value: name,
		})
	}

	return tui.SelectWithConfig("Which group?", options,
		tui.NewMenuConfig(tui.WithMenuTheme(a.theme)))
}

// menuAdd prompts for a group name and descriptions, then adds the batch.
func (a *app) menuAdd(ctx context.Context) error {
	cfg := tui.NewMenuConfig(tui.WithMenuTheme(a.theme))

	group, err := tui.InputWithValidationConfig("Group name", "", func(name string) error {
		if !task.ValidGroupName(name) {
			return fmt.Errorf("%w: %q", dkterrors.ErrInvalidGroupName, name)
		}
		return nil
	}, cfg)
	if err != nil {
		return err
	}

	line, err := tui.InputWithConfig("Descriptions (separate with ;)", "", cfg)
	if err != nil {
		return err
	}

	descriptions := splitDescriptions(line)
	tasks, err := a.manager.AddTasks(ctx, group, descriptions)
	if err != nil && !stderrors.Is(err, dkterrors.ErrPersistFailed) {
		return err
	}
	if stderrors.Is(err, dkterrors.ErrPersistFailed) {
		a.warnPersistFailure(err)
	}

	a.out.Success(fmt.Sprintf("%q now has %d tasks", group, len(tasks)))
	return nil
}

// menuEdit prompts for group, id, and a new description.
func (a *app) menuEdit(ctx context.Context) error {
	group, err := a.promptGroup(ctx)
	if err != nil {
		return err
	}

	cfg := tui.NewMenuConfig(tui.WithMenuTheme(a.theme))
	idStr, err := tui.InputWithValidationConfig("Task id", "", validateID, cfg)
	if err != nil {
		return err
	}
	id, _ := strconv.Atoi(idStr)

	description, err := tui.InputWithConfig("New description", "", cfg)
	if err != nil {
		return err
	}

	if err := a.manager.EditTask(ctx, group, id, description); err != nil {
		return err
	}
	a.out.Success(fmt.Sprintf("Updated task %d in %q", id, group))
	return nil
}

// menuDone prompts for group and ids to complete.
func (a *app) menuDone(ctx context.Context) error {
	group, err := a.promptGroup(ctx)
	if err != nil {
		return err
	}

	ids, err := tui.InputWithConfig("Ids to complete (comma-separated)", "",
		tui.NewMenuConfig(tui.WithMenuTheme(a.theme)))
	if err != nil {
		return err
	}

	if err := a.manager.MarkComplete(ctx, group, ids); err != nil {
		return err
	}
	a.out.Success(fmt.Sprintf("Marked %s done in %q", ids, group))
	return nil
}

// menuRm prompts for group and ids to delete.
func (a *app) menuRm(ctx context.Context) error {
	group, err := a.promptGroup(ctx)
	if err != nil {
		return err
	}

	ids, err := tui.InputWithConfig("Ids to delete (comma-separated)", "",
		tui.NewMenuConfig(tui.WithMenuTheme(a.theme)))
	if err != nil {
		return err
	}

	if err := a.manager.DeleteTasks(ctx, group, ids); err != nil {
		return err
	}
	a.out.Success(fmt.Sprintf("Deleted %s from %q", ids, group))
	return nil
}

// menuTheme prompts for a theme and persists the choice.
func (a *app) menuTheme() error {
	options := make([]tui.Option, 0, 3)
	for _, theme := range tui.Themes() {
		options = append(options, tui.Option{
			Label: displayName(theme.Name),
			Value: theme.Name,
		})
	}

	name, err := tui.SelectWithConfig("Pick a theme", options,
		tui.NewMenuConfig(tui.WithMenuTheme(a.theme)))
	if err != nil {
		return err
	}

	theme, err := tui.ThemeByName(name)
	if err != nil {
		return err
	}

	a.cfg.UI.Theme = theme.Name
	a.theme = theme
	if err := config.SaveGlobal(a.cfg, "docket menu"); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	a.out.Success(fmt.Sprintf("Theme set to %s", displayName(theme.Name)))
	return nil
}

// menuReset confirms and clears all data.
func (a *app) menuReset(ctx context.Context) error {
	confirmed, err := tui.ConfirmWithConfig(
		"Delete ALL tasks and the data file? This cannot be undone.",
		false,
		tui.NewMenuConfig(tui.WithMenuTheme(a.theme)),
	)
	if err != nil {
		return err
	}

	err = a.manager.Reset(ctx, confirmed)
	switch {
	case err == nil:
		a.out.Success("All tasks deleted")
	case stderrors.Is(err, dkterrors.ErrResetDeclined):
		a.out.Info("Reset canceled. Nothing was deleted.")
	case stderrors.Is(err, dkterrors.ErrNoDataFile):
		a.out.Warning(dkterrors.UserMessage(err))
	default:
		return err
	}
	return nil
}

// validateID validates an id entered at a prompt.
func validateID(s string) error {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 1 {
		return fmt.Errorf("%w: %q", dkterrors.ErrInvalidTaskID, s)
	}
	return nil
}

// splitDescriptions splits a ;-separated input line into descriptions,
// trimming whitespace and dropping empty entries.
func splitDescriptions(line string) []string {
	parts := strings.Split(line, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
