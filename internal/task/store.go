package task

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrz1836/docket/internal/constants"
	"github.com/mrz1836/docket/internal/ctxutil"
	"github.com/mrz1836/docket/internal/domain"
	dkterrors "github.com/mrz1836/docket/internal/errors"
	"github.com/mrz1836/docket/internal/flock"
)

// Store defines the persistence interface for the task document.
// The document is always read and written whole; there are no partial
// updates and no indexing.
type Store interface {
	// Load reads the persisted document. A missing file yields an empty
	// mapping and no error. A file that cannot be parsed yields an empty
	// mapping and an error wrapping ErrStoreCorrupted so the caller can
	// report the corruption and continue.
	Load(ctx context.Context) (domain.Groups, error)

	// Save rewrites the full document atomically. Empty groups are pruned
	// from the written document; the file on disk never contains a group
	// with zero tasks. Failures wrap ErrPersistFailed.
	Save(ctx context.Context, groups domain.Groups) error

	// Remove deletes the data file. Returns ErrNoDataFile if none exists.
	Remove(ctx context.Context) error

	// Path returns the location of the data file.
	Path() string
}

// FileStore implements Store using a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore persisting to the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the data file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted document.
func (s *FileStore) Load(ctx context.Context) (domain.Groups, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return domain.Groups{}, err
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return domain.Groups{}, nil
	}

	lockFile, err := s.acquireLock(ctx)
	if err != nil {
		return domain.Groups{}, fmt.Errorf("failed to load data file: %w", err)
	}
	defer func() { _ = s.releaseLock(lockFile) }()

	data, err := os.ReadFile(s.path) //#nosec G304 -- path is the configured data file
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Groups{}, nil
		}
		return domain.Groups{}, fmt.Errorf("failed to read data file '%s': %w", s.path, err)
	}

	var groups domain.Groups
	if err := json.Unmarshal(data, &groups); err != nil {
		// Corruption is recoverable: the caller reports it and continues
		// with an empty document.
		return domain.Groups{}, fmt.Errorf("failed to parse data file '%s': %w: %w", s.path, dkterrors.ErrStoreCorrupted, err)
	}
	if groups == nil {
		groups = domain.Groups{}
	}

	return groups, nil
}

// Save rewrites the full document atomically under the file lock.
func (s *FileStore) Save(ctx context.Context, groups domain.Groups) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	// Prune empty groups at the single enforcement point: the written
	// document never contains a group with zero tasks, even when a
	// declined deletion left an empty shell in memory.
	doc := make(domain.Groups, len(groups))
	for name, tasks := range groups {
		if len(tasks) == 0 {
			continue
		}
		doc[name] = tasks
	}

	// Map marshaling sorts keys, so rewrites are deterministic.
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", dkterrors.ErrPersistFailed, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), constants.DirPerm); err != nil {
		return fmt.Errorf("%w: %w", dkterrors.ErrPersistFailed, err)
	}

	lockFile, err := s.acquireLock(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", dkterrors.ErrPersistFailed, err)
	}
	defer func() { _ = s.releaseLock(lockFile) }()

	if err := atomicWrite(s.path, data); err != nil {
		return fmt.Errorf("%w: %w", dkterrors.ErrPersistFailed, err)
	}

	return nil
}

// Remove deletes the data file.
func (s *FileStore) Remove(ctx context.Context) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return dkterrors.ErrNoDataFile
		}
		return fmt.Errorf("failed to remove data file '%s': %w", s.path, err)
	}

	return nil
}

// lockPath returns the side lock file guarding the data file. The lock is a
// separate file because Save replaces the data file's inode on rename, which
// would silently drop a lock held on the data file itself.
func (s *FileStore) lockPath() string {
	return s.path + ".lock"
}

// acquireLock takes an exclusive cross-process lock on the data file,
// retrying until LockTimeout. The caller must release via releaseLock.
func (s *FileStore) acquireLock(ctx context.Context) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), constants.DirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, constants.FilePerm) //#nosec G304 -- lock path derives from the configured data file
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	deadline := time.Now().Add(constants.LockTimeout)
	for {
		select {
		case <-ctx.Done():
			_ = f.Close()
			return nil, ctx.Err()
		default:
		}

		if err := flock.Acquire(f); err == nil {
			return f, nil
		}

		if time.Now().After(deadline) {
			_ = f.Close()
			return nil, fmt.Errorf("failed to acquire lock: %w", dkterrors.ErrLockTimeout)
		}

		time.Sleep(constants.LockRetryInterval)
	}
}

// releaseLock releases and closes the lock file.
func (s *FileStore) releaseLock(f *os.File) error {
	if f == nil {
		return nil
	}
	unlockErr := flock.Release(f)
	closeErr := f.Close()
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}

// atomicWrite writes data to path via a temp file, fsync, and rename so a
// crash mid-write leaves either the old or the new content, never a partial
// document.
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePerm) //#nosec G304 -- path is constructed internally
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	// Sync to disk (ensure data is persisted before rename)
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
