package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/parallax/internal/colors"
	"github.com/cristianoliveira/parallax/internal/config"
	"github.com/cristianoliveira/parallax/internal/storage/sqlite"
)

var (
	_ Store = (*sqlite.SQLiteStorage)(nil)
	_ Store = (*FileStorage)(nil)
)

// NewFromConfig creates the store selected by storage_backend in state_dir.
// config.Load must have been called.
func NewFromConfig() (Store, error) {
	return NewForBackend(config.Get("storage_backend", BackendSQLite), config.Get("state_dir", ""))
}

// NewForBackend creates a store, falling back to the file backend with a
// warning when the requested backend is unknown or cannot be opened.
func NewForBackend(backend, stateDir string) (Store, error) {
	store, err := Open(backend, stateDir)
	if err == nil {
		return store, nil
	}
	colors.Warning(fmt.Sprintf("storage backend %q unavailable, falling back to %s: %v", backend, BackendFile, err))
	return NewFileStorage(stateDir)
}

// Open creates exactly the requested backend.
func Open(backend, stateDir string) (Store, error) {
	if strings.TrimSpace(stateDir) == "" {
		return nil, fmt.Errorf("open storage: state directory is empty")
	}
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		return sqlite.NewSQLiteStorage(filepath.Join(stateDir, dbFileName))
	case BackendFile:
		return NewFileStorage(stateDir)
	default:
		return nil, fmt.Errorf("open storage %q: %w", backend, ErrUnknownBackend)
	}
}
