// Package sessionlock serializes mutating recupsort runs on one recovery tree
// with an advisory file lock.
package sessionlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"recupsort/internal/failure"
)

// Lock is a held session lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes the lock at path without blocking. A lock held by another
// session is reported as a configuration error naming the lock file.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, failure.Wrap(failure.ErrConfiguration, "lock", "ensure lock dir", "Cannot create lock directory", err)
	}
	l := flock.New(path)
	ok, err := l.TryLock()
	if err != nil {
		return nil, failure.Wrap(failure.ErrConfiguration, "lock", "acquire lock", fmt.Sprintf("Cannot lock %s", path), err)
	}
	if !ok {
		return nil, failure.Wrap(
			failure.ErrConfiguration,
			"lock",
			"acquire lock",
			fmt.Sprintf("Another recupsort session is working on this directory (lock %s)", path),
			nil,
		)
	}
	return &Lock{path: path, lock: l}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks and removes the lock file.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove lock file: %w", err)
	}
	return nil
}
