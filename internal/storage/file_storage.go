package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cristianoliveira/parallax/internal/config"
	"github.com/pelletier/go-toml/v2"
)

type fileState struct {
	LastURL   string    `toml:"last_url,omitempty"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// FileStorage keeps state in a TOML file replaced atomically on every write.
type FileStorage struct {
	dir string
	now func() time.Time
}

// NewFileStorage creates a file store in dir.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		return nil, fmt.Errorf("file storage: create state directory: %w", err)
	}
	return &FileStorage{dir: dir, now: time.Now}, nil
}

func (fs *FileStorage) path() string {
	return filepath.Join(fs.dir, stateFileName)
}

func (fs *FileStorage) read() (fileState, error) {
	var st fileState
	data, err := os.ReadFile(fs.path())
	if errors.Is(err, os.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("file storage: read: %w", err)
	}
	if err := toml.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("file storage: decode %s: %w", fs.path(), err)
	}
	return st, nil
}

func (fs *FileStorage) write(st fileState) error {
	data, err := toml.Marshal(st)
	if err != nil {
		return fmt.Errorf("file storage: encode: %w", err)
	}
	tmp, err := os.CreateTemp(fs.dir, stateFileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("file storage: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("file storage: write temp file: %w", err)
	}
	if err := tmp.Chmod(config.FileModeFile); err != nil {
		tmp.Close()
		return fmt.Errorf("file storage: chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file storage: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.path()); err != nil {
		return fmt.Errorf("file storage: replace state file: %w", err)
	}
	return nil
}

func (fs *FileStorage) update(fn func(*fileState)) error {
	return WithLock(filepath.Join(fs.dir, lockDirName), func() error {
		st, err := fs.read()
		if err != nil {
			return err
		}
		fn(&st)
		st.UpdatedAt = fs.now().UTC()
		return fs.write(st)
	})
}

// LastURL returns the stored URL.
func (fs *FileStorage) LastURL() (string, error) {
	st, err := fs.read()
	return st.LastURL, err
}

// SaveLastURL stores url.
func (fs *FileStorage) SaveLastURL(url string) error {
	return fs.update(func(st *fileState) { st.LastURL = url })
}

// ClearLastURL forgets the stored URL.
func (fs *FileStorage) ClearLastURL() error {
	return fs.update(func(st *fileState) { st.LastURL = "" })
}

// Close is a no-op; the file is not held open.
func (fs *FileStorage) Close() error {
	return nil
}
