package sqlite

import "errors"

var (
	// ErrEmptyKey indicates a blank key.
	ErrEmptyKey = errors.New("key cannot be empty")
	// ErrKeyNotFound indicates that no value is stored for a key.
	ErrKeyNotFound = errors.New("key not found")
)
