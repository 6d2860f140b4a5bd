package storage

import (
	"fmt"
	"os"
	"time"
)

const (
	lockTimeout = 5 * time.Second
	lockRetry   = 50 * time.Millisecond
)

// Lock is a directory-based lock. Creating the directory is atomic, so only
// one process holds it at a time.
type Lock struct {
	dir string
}

// NewLock creates a lock at the given directory path.
func NewLock(dir string) *Lock {
	return &Lock{dir: dir}
}

// Acquire creates the lock directory, retrying while another holder has it.
func (l *Lock) Acquire() error {
	deadline := time.Now().Add(lockTimeout)
	for {
		err := os.Mkdir(l.dir, FileModeDir)
		if err == nil {
			return nil
		}
		if !os.IsExist(err) {
			return fmt.Errorf("create lock directory: %w", err)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("lock %s still held after %s", l.dir, lockTimeout)
		}
		time.Sleep(lockRetry)
	}
}

// Release removes the lock directory.
func (l *Lock) Release() error {
	return os.Remove(l.dir)
}

// WithLock executes fn while holding the lock.
func WithLock(dir string, fn func() error) error {
	lock := NewLock(dir)
	if err := lock.Acquire(); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer lock.Release()
	return fn()
}
