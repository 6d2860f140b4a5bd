// Package storage persists the little state parallax keeps between runs.
package storage

import (
	"errors"

	"github.com/cristianoliveira/parallax/internal/config"
)

const (
	// BackendSQLite selects the SQLite key/value store.
	BackendSQLite = "sqlite"
	// BackendFile selects the TOML state file.
	BackendFile = "file"

	dbFileName    = "parallax.db"
	stateFileName = "state" + config.FileExtTOML
	lockDirName   = ".state.lock"

	// FileModeDir is the permission for the state directory.
	FileModeDir = config.FileModeDir
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store persists the last synced URL. Implementations are best effort: the
// caller logs failures and carries on.
type Store interface {
	// LastURL returns the stored URL, or "" when none is stored.
	LastURL() (string, error)
	SaveLastURL(url string) error
	ClearLastURL() error
	Close() error
}
