package task

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mrz1836/docket/internal/ctxutil"
	"github.com/mrz1836/docket/internal/domain"
	dkterrors "github.com/mrz1836/docket/internal/errors"
)

// ConfirmFunc is the confirmation port the Manager invokes before a
// destructive follow-up (deleting a fully-completed or emptied group).
// An error counts as a decline. The Manager never performs interactive
// I/O itself; the caller decides how confirmation is obtained.
type ConfirmFunc func(ctx context.Context, message string) (bool, error)

// declineAll is the default confirmation port: every prompt is declined.
func declineAll(_ context.Context, _ string) (bool, error) {
	return false, nil
}

// Manager owns the in-memory task document and applies validated mutations.
// Every mutating operation runs under a single mutex, persists the full
// snapshot on success before returning, and leaves state unchanged on
// validation failure.
type Manager struct {
	mu      sync.Mutex
	store   Store
	groups  domain.Groups
	confirm ConfirmFunc
	logger  zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfirm sets the confirmation port. Without it every destructive
// follow-up prompt is declined.
func WithConfirm(confirm ConfirmFunc) Option {
	return func(m *Manager) {
		if confirm != nil {
			m.confirm = confirm
		}
	}
}

// WithLogger sets the logger. Without it logging is discarded.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a Manager backed by the given store. Call Load before
// the first operation; a fresh Manager starts with an empty document.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		groups:  domain.Groups{},
		confirm: declineAll,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load reads the persisted document into memory. On corruption the Manager
// continues with an empty document and returns the error so the caller can
// report it; the process survives either way.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	groups, err := m.store.Load(ctx)
	m.groups = groups
	if err != nil {
		m.logger.Warn().Err(err).Str("path", m.store.Path()).Msg("load failed, starting with empty data")
		return err
	}

	m.logger.Debug().Int("groups", len(groups)).Str("path", m.store.Path()).Msg("data file loaded")
	return nil
}

// Groups returns a copy of the current document for display. Mutating the
// copy never affects the Manager's state.
func (m *Manager) Groups(ctx context.Context) (domain.Groups, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.groups.Clone(), nil
}

// Tasks returns a copy of one group's task list.
// Returns ErrGroupNotFound for an unknown group.
func (m *Manager) Tasks(ctx context.Context, group string) ([]domain.Task, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tasks, ok := m.groups[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", dkterrors.ErrGroupNotFound, group)
	}
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out, nil
}

// AddTasks validates the group name and every description, then appends one
// task per description with strictly increasing ids and persists. The batch
// is atomic: a single invalid description fails the whole call and no task
// from the batch is ever visible in memory or on disk.
//
// On success the group's updated task list is returned. If the persist
// fails, the in-memory state keeps the new tasks and the returned error
// wraps ErrPersistFailed; the tasks are returned alongside it so the caller
// can still display them.
func (m *Manager) AddTasks(ctx context.Context, group string, descriptions []string) ([]domain.Task, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	if !ValidGroupName(group) {
		return nil, fmt.Errorf("%w: %q", dkterrors.ErrInvalidGroupName, group)
	}
	if len(descriptions) == 0 {
		return nil, dkterrors.ErrEmptyBatch
	}
	for _, desc := range descriptions {
		if !ValidDescription(desc) {
			return nil, fmt.Errorf("%w: %q", dkterrors.ErrInvalidDescription, desc)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	nextID := m.groups.NextID(group)
	for _, desc := range descriptions {
		m.groups[group] = append(m.groups[group], domain.Task{
			ID:          nextID,
			Description: desc,
		})
		nextID++
	}

	m.logger.Info().
		Str("group", group).
		Int("added", len(descriptions)).
		Msg("tasks added")

	tasks := make([]domain.Task, len(m.groups[group]))
	copy(tasks, m.groups[group])
	return tasks, m.persist(ctx)
}

// EditTask replaces one task's description in place and persists.
// The new description is validated first; an invalid one fails without
// touching state. Unknown groups and ids are soft failures that leave both
// memory and the persisted document untouched.
func (m *Manager) EditTask(ctx context.Context, group string, id int, description string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if !ValidDescription(description) {
		return fmt.Errorf("%w: %q", dkterrors.ErrInvalidDescription, description)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tasks, ok := m.groups[group]
	if !ok {
		return fmt.Errorf("%w: %q", dkterrors.ErrGroupNotFound, group)
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Description = description
			m.logger.Info().Str("group", group).Int("id", id).Msg("task edited")
			return m.persist(ctx)
		}
	}

	return fmt.Errorf("%w: id %d in group %q", dkterrors.ErrTaskNotFound, id, group)
}

// MarkComplete sets completed on every task whose id appears in the
// comma-separated list and persists. The id list is parsed strictly: any
// non-numeric entry aborts the call before any task is touched. Ids not
// present in the group are silently ignored.
//
// When the call leaves the group fully completed, the confirmation port is
// invoked exactly once; on confirmation the group is removed and persisted
// again. Declining keeps the fully-completed group.
func (m *Manager) MarkComplete(ctx context.Context, group, idsCSV string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	ids, err := ParseIDs(idsCSV)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tasks, ok := m.groups[group]
	if !ok {
		return fmt.Errorf("%w: %q", dkterrors.ErrGroupNotFound, group)
	}

	marked := 0
	for i := range tasks {
		if containsID(ids, tasks[i].ID) {
			if !tasks[i].Completed {
				marked++
			}
			tasks[i].Completed = true
		}
	}

	m.logger.Info().
		Str("group", group).
		Int("marked", marked).
		Msg("tasks completed")

	if err := m.persist(ctx); err != nil {
		return err
	}

	if !domain.AllCompleted(m.groups[group]) {
		return nil
	}

	confirmed, confErr := m.confirm(ctx, fmt.Sprintf("All tasks in %q are complete. Delete the group?", group))
	if confErrOrDeclined(confirmed, confErr) {
		return nil
	}

	delete(m.groups, group)
	m.logger.Info().Str("group", group).Msg("completed group deleted")
	return m.persist(ctx)
}

// DeleteTasks removes every task whose id appears in the comma-separated
// list and persists. The id list is parsed leniently: non-numeric entries
// are ignored rather than erroring.
//
// The order is deterministic: delete tasks, persist, then if the group is
// now empty invoke the confirmation port; on confirmation remove the group
// from memory and persist again. Because Save prunes empty groups, the
// first persist already omits the emptied group from the document; a
// declined deletion keeps the empty shell in memory for the session only.
func (m *Manager) DeleteTasks(ctx context.Context, group, idsCSV string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	ids := ParseIDsLenient(idsCSV)

	m.mu.Lock()
	defer m.mu.Unlock()

	tasks, ok := m.groups[group]
	if !ok {
		return fmt.Errorf("%w: %q", dkterrors.ErrGroupNotFound, group)
	}

	remaining := tasks[:0]
	for _, t := range tasks {
		if !containsID(ids, t.ID) {
			remaining = append(remaining, t)
		}
	}
	m.groups[group] = remaining

	m.logger.Info().
		Str("group", group).
		Int("deleted", len(tasks)-len(remaining)).
		Msg("tasks deleted")

	if err := m.persist(ctx); err != nil {
		return err
	}

	if len(m.groups[group]) > 0 {
		return nil
	}

	confirmed, confErr := m.confirm(ctx, fmt.Sprintf("Group %q is now empty. Delete it?", group))
	if confErrOrDeclined(confirmed, confErr) {
		return nil
	}

	delete(m.groups, group)
	m.logger.Info().Str("group", group).Msg("empty group deleted")
	return m.persist(ctx)
}

// Reset clears all data. With confirmed=false it declines with
// ErrResetDeclined and changes nothing. With confirmed=true it removes the
// data file and clears the in-memory document; if no data file exists it
// reports ErrNoDataFile and the in-memory document is left as is.
func (m *Manager) Reset(ctx context.Context, confirmed bool) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if !confirmed {
		return dkterrors.ErrResetDeclined
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Remove(ctx); err != nil {
		return err
	}

	m.groups = domain.Groups{}
	m.logger.Info().Str("path", m.store.Path()).Msg("data file reset")
	return nil
}

// persist rewrites the full snapshot. Callers hold m.mu. A failed persist
// wraps ErrPersistFailed; the in-memory document is unchanged by the
// failure and remains authoritative for the session.
func (m *Manager) persist(ctx context.Context) error {
	if err := m.store.Save(ctx, m.groups); err != nil {
		m.logger.Error().Err(err).Str("path", m.store.Path()).Msg("persist failed")
		return err
	}
	return nil
}

// containsID reports whether id appears in ids.
func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// confErrOrDeclined collapses the confirmation port's result into a single
// "skip the deletion" decision. Errors from the port count as decline.
func confErrOrDeclined(confirmed bool, err error) bool {
	return err != nil || !confirmed
}
