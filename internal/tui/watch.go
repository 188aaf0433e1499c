// Package tui provides terminal user interface components for docket.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrz1836/docket/internal/clock"
	"github.com/mrz1836/docket/internal/domain"
)

// DefaultWatchInterval is the default refresh interval for watch mode.
const DefaultWatchInterval = 2 * time.Second

// GroupsLoader reloads the task groups from the store.
// Watch mode polls it on every tick so edits from other processes show up.
type GroupsLoader func(ctx context.Context) (domain.Groups, error)

// WatchConfig holds configuration for the watch mode.
type WatchConfig struct {
	// Interval is the refresh interval for watch mode.
	Interval time.Duration
	// Theme selects the color theme for rendering.
	Theme Theme
	// Width forces a terminal width (0 means auto-detect).
	Width int
	// Clock supplies the "last updated" timestamp; nil means system time.
	Clock clock.Clock
}

// DefaultWatchConfig returns the default watch configuration.
func DefaultWatchConfig(theme Theme) WatchConfig {
	return WatchConfig{
		Interval: DefaultWatchInterval,
		Theme:    theme,
	}
}

// WatchModel is the Bubble Tea model for watch mode.
// It implements tea.Model (Init, Update, View).
type WatchModel struct {
	groups     domain.Groups
	lastUpdate time.Time
	config     WatchConfig
	width      int
	height     int
	quitting   bool
	err        error
	loader     GroupsLoader
	// baseCtx is stored for use in async Bubble Tea commands.
	// Storing context in structs is generally discouraged, but Bubble Tea's
	// async command model requires it for proper context propagation.
	baseCtx context.Context //nolint:containedctx // Required for Bubble Tea async commands
}

// TickMsg signals time for a refresh.
type TickMsg time.Time

// RefreshMsg carries new data from a refresh operation.
type RefreshMsg struct {
	Groups domain.Groups
	Err    error
}

// NewWatchModel creates a new WatchModel with the given loader.
// The context is stored for use in async Bubble Tea commands.
func NewWatchModel(ctx context.Context, loader GroupsLoader, cfg WatchConfig) *WatchModel {
	width := cfg.Width
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}

	return &WatchModel{
		config:  cfg,
		width:   width,
		height:  24,
		loader:  loader,
		baseCtx: ctx,
	}
}

// Init returns the initial command to run when the program starts.
// It starts the refresh timer and performs an initial data load.
func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(
		m.refreshData(),
		m.tick(),
	)
}

// Update handles messages and returns the updated model and any commands.
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m, m.refreshData()

	case RefreshMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, m.tick()
		}
		m.groups = msg.Groups
		m.lastUpdate = m.config.Clock.Now()
		m.err = nil
		return m, m.tick()
	}

	return m, nil
}

// View renders the current state to a string.
func (m *WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n\n", m.err))
	}

	table := NewGroupTable(m.config.Theme, WithTableWidth(m.width))
	_ = table.RenderGroups(&b, m.groups)

	if !m.lastUpdate.IsZero() {
		b.WriteString(fmt.Sprintf("\nLast updated: %s", m.lastUpdate.Format("15:04:05")))
	}
	b.WriteString("\nPress 'q' to quit")

	return b.String()
}

// Groups returns the current groups (useful for testing).
func (m *WatchModel) Groups() domain.Groups {
	return m.groups
}

// LastUpdate returns the last update timestamp.
func (m *WatchModel) LastUpdate() time.Time {
	return m.lastUpdate
}

// IsQuitting returns true if the model is in quitting state.
func (m *WatchModel) IsQuitting() bool {
	return m.quitting
}

// Error returns the last error from a refresh operation.
func (m *WatchModel) Error() error {
	return m.err
}

// tick returns a command that sends a TickMsg after the configured interval.
func (m *WatchModel) tick() tea.Cmd {
	return tea.Tick(m.config.Interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// refreshData reloads groups through the loader.
func (m *WatchModel) refreshData() tea.Cmd {
	return func() tea.Msg {
		ctx := m.baseCtx
		if ctx == nil {
			ctx = context.Background()
		}

		groups, err := m.loader(ctx)
		if err != nil {
			return RefreshMsg{Err: fmt.Errorf("failed to reload tasks: %w", err)}
		}

		return RefreshMsg{Groups: groups}
	}
}

// RunWatch starts the watch mode program and blocks until the user quits.
func RunWatch(ctx context.Context, loader GroupsLoader, cfg WatchConfig) error {
	model := NewWatchModel(ctx, loader, cfg)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch mode failed: %w", err)
	}

	return nil
}
