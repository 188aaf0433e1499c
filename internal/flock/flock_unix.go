//go:build unix

package flock

import (
	"os"
	"syscall"
)

// Acquire takes an exclusive lock on f without blocking. It fails
// immediately when another process holds the lock.
func Acquire(f *os.File) error {
	return syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
}

// Release drops the lock held on f.
func Release(f *os.File) error {
	return syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
}
