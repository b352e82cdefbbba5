package i

import "errors"

var (
	// ErrNotFound is returned by a BlobStore when nothing is stored under a key.
	ErrNotFound = errors.New("blobstore: key not found")
	// ErrInvalidKey is returned by a BlobStore for an empty key or one escaping its root.
	ErrInvalidKey = errors.New("blobstore: invalid key")
)

// BlobStore persists opaque maze documents under string keys.
type BlobStore interface {
	// Put stores data under key, replacing any previous value.
	Put(key string, data []byte) error

	// Get returns the data stored under key.
	// Returns ErrNotFound if the key is not found, or another error in case of an unexpected failure.
	Get(key string) ([]byte, error)
}
