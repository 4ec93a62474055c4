// Package lock guards indexing runs with an exclusive lock file.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
)

// ErrLocked is returned by TryLock while another process holds the lock.
var ErrLocked = errors.New("lock is held by another process")

// File is a process-wide lock backed by a file. The holder's pid is written
// into the file for operators.
type File struct {
	path  string
	flock *flock.Flock
}

// New prepares a lock at path, creating its directory.
func New(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("lock path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}
	return &File{path: path, flock: flock.New(path)}, nil
}

// TryLock takes the lock without waiting.
func (f *File) TryLock() error {
	locked, err := f.flock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", f.path, err)
	}
	if !locked {
		return ErrLocked
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0o644); err != nil {
		_ = f.flock.Unlock()
		return fmt.Errorf("write pid to %s: %w", f.path, err)
	}
	return nil
}

// Unlock releases the lock. The file is kept.
func (f *File) Unlock() error {
	if err := f.flock.Unlock(); err != nil {
		return fmt.Errorf("unlock %s: %w", f.path, err)
	}
	return nil
}
