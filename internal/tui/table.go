// Package tui provides terminal user interface components for docket.
package tui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mrz1836/docket/internal/domain"
)

// Column width bounds for the task table.
const (
	// MinDescriptionWidth keeps descriptions readable in narrow terminals.
	MinDescriptionWidth = 20

	// MaxDescriptionWidth caps the description column so wide terminals
	// don't stretch rows into unreadable lines.
	MaxDescriptionWidth = 80

	// idColumnWidth fits ids up to four digits plus the header.
	idColumnWidth = 4

	// statusColumnWidth fits the icon plus "done"/"open".
	statusColumnWidth = 6
)

// DefaultTerminalWidth is used when terminal width cannot be determined.
const DefaultTerminalWidth = 80

// GroupTable renders one task group as a bordered panel with a header row
// and one row per task. Multiple groups stack vertically, sorted by name.
type GroupTable struct {
	theme  Theme
	styles *OutputStyles
	width  int
}

// GroupTableOption is a functional option for GroupTable configuration.
type GroupTableOption func(*GroupTable)

// WithTableWidth sets a specific terminal width (useful for testing).
func WithTableWidth(width int) GroupTableOption {
	return func(t *GroupTable) {
		t.width = width
	}
}

// NewGroupTable creates a table renderer using the given theme.
// Terminal width is auto-detected unless overridden with WithTableWidth.
func NewGroupTable(theme Theme, opts ...GroupTableOption) *GroupTable {
	t := &GroupTable{
		theme:  theme,
		styles: NewOutputStyles(theme),
		width:  detectTerminalWidth(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// detectTerminalWidth returns the current terminal width.
// Returns DefaultTerminalWidth if detection fails.
func detectTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

// RenderGroups writes every group to w, sorted by group name.
// Empty input renders a dim "no tasks" line.
func (t *GroupTable) RenderGroups(w io.Writer, groups domain.Groups) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, t.styles.Dim.Render("No tasks. Run 'docket add' to create some."))
		return err
	}

	names := groups.Names()
	sort.Strings(names)

	for i, name := range names {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := t.RenderGroup(w, name, groups[name]); err != nil {
			return err
		}
	}

	return nil
}

// RenderGroup writes a single group panel to w.
func (t *GroupTable) RenderGroup(w io.Writer, name string, tasks []domain.Task) error {
	descWidth := t.descriptionWidth(tasks)

	// Inner width: id + desc + status columns with 2-space separators.
	innerWidth := idColumnWidth + 2 + descWidth + 2 + statusColumnWidth

	title := t.styles.Header.Render(name) + t.styles.Dim.Render(fmt.Sprintf(" (%d)", len(tasks)))
	titleVisible := runewidth.StringWidth(name + fmt.Sprintf(" (%d)", len(tasks)))

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", innerWidth+2) + "┐\n")
	b.WriteString("│ " + title + pad(titleVisible, innerWidth) + " │\n")
	b.WriteString("├" + strings.Repeat("─", innerWidth+2) + "┤\n")

	header := padCell("ID", idColumnWidth) + "  " + padCell("DESCRIPTION", descWidth) + "  " + padCell("STATUS", statusColumnWidth)
	b.WriteString("│ " + t.styles.Header.Render(header) + " │\n")

	for _, task := range tasks {
		b.WriteString("│ " + t.renderTaskRow(task, descWidth) + " │\n")
	}

	b.WriteString("└" + strings.Repeat("─", innerWidth+2) + "┘\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// renderTaskRow renders one task row with icon and colored status text.
func (t *GroupTable) renderTaskRow(task domain.Task, descWidth int) string {
	id := fmt.Sprintf("%d", task.ID)
	desc := truncate(task.Description, descWidth)

	statusPlain := StatusIcon(task.Completed) + " " + statusText(task.Completed)
	var statusStyled string
	if task.Completed {
		statusStyled = t.styles.Success.Render(statusPlain)
	} else {
		statusStyled = statusPlain
	}

	descCell := desc
	if task.Completed {
		descCell = t.styles.Dim.Render(desc)
	}

	row := padCell(id, idColumnWidth) + "  " +
		descCell + pad(runewidth.StringWidth(desc), descWidth) + "  " +
		statusStyled + pad(runewidth.StringWidth(statusPlain), statusColumnWidth)

	return row
}

// descriptionWidth picks the description column width from content,
// clamped to the terminal and the min/max bounds.
func (t *GroupTable) descriptionWidth(tasks []domain.Task) int {
	width := runewidth.StringWidth("DESCRIPTION")
	for _, task := range tasks {
		if w := runewidth.StringWidth(task.Description); w > width {
			width = w
		}
	}

	// Leave room for borders, id and status columns, and separators.
	const overhead = 4 + idColumnWidth + 2 + 2 + statusColumnWidth
	if available := t.width - overhead; width > available {
		width = available
	}

	if width < MinDescriptionWidth {
		width = MinDescriptionWidth
	}
	if width > MaxDescriptionWidth {
		width = MaxDescriptionWidth
	}

	return width
}

// statusText returns the textual status label.
func statusText(completed bool) string {
	if completed {
		return "done"
	}
	return "open"
}

// truncate shortens s to the given display width, appending an ellipsis.
// Width is measured in terminal cells so wide runes count as two.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// padCell pads s with spaces to the given display width.
func padCell(s string, width int) string {
	return s + pad(runewidth.StringWidth(s), width)
}

// pad returns the spaces needed to grow visible width to target width.
// Padding is computed from the plain text width so ANSI codes in the
// styled cell don't skew alignment.
func pad(visible, width int) string {
	if visible >= width {
		return ""
	}
	return strings.Repeat(" ", width-visible)
}

// GroupSummary is a one-line plain rendering of a group, used by the
// interactive menu and quiet output.
func GroupSummary(name string, tasks []domain.Task) string {
	done := 0
	for _, task := range tasks {
		if task.Completed {
			done++
		}
	}
	return fmt.Sprintf("%s (%d/%d done)", name, done, len(tasks))
}
