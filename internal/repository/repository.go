package repository

import "errors"

// ErrSnapshotNotFound is returned when no snapshot exists for a key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository defines the interface for the durable key-value store
type SnapshotRepository interface {
	// Get returns the stored document for key
	Get(key string) (string, error)

	// Put replaces the document stored under key
	Put(key, value string) error

	// Delete removes key; deleting a missing key is not an error
	Delete(key string) error

	// Keys lists the stored keys in ascending order
	Keys() ([]string, error)
}
