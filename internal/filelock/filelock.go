// Package filelock takes non-blocking advisory locks on open files.
//
// Readers take a shared lock so that any number of them may read a file
// concurrently; writers take an exclusive lock. Neither waits: a conflicting
// lock held elsewhere fails the call with ErrLocked.
package filelock

import (
	"errors"
	"os"
)

// ErrLocked is returned when a conflicting lock is held by another handle.
var ErrLocked = errors.New("file is locked")

// Shared locks f for reading.
func Shared(f *os.File) error {
	return lock(f, false)
}

// Exclusive locks f for writing.
func Exclusive(f *os.File) error {
	return lock(f, true)
}

// Unlock releases a lock taken by Shared or Exclusive. Closing the file
// releases it as well.
func Unlock(f *os.File) error {
	return unlock(f)
}
