//go:build windows

package flock

import (
	"os"

	"golang.org/x/sys/windows"
)

// LockFileEx locks a byte range, not the whole file; locking the first
// byte is enough to serialize writers that all use this package.
const (
	rangeLow  = 1
	rangeHigh = 0
)

// Acquire takes an exclusive lock on f without blocking. It fails
// immediately when another process holds the lock.
func Acquire(f *os.File) error {
	return windows.LockFileEx(
		windows.Handle(f.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY,
		0,
		rangeLow,
		rangeHigh,
		&windows.Overlapped{},
	)
}

// Release drops the lock held on f.
func Release(f *os.File) error {
	return windows.UnlockFileEx(
		windows.Handle(f.Fd()),
		0,
		rangeLow,
		rangeHigh,
		&windows.Overlapped{},
	)
}
