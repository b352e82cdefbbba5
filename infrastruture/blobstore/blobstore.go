// Package blobstore provides i.BlobStore implementations backed by the local
// filesystem, gdata application storage, Redis and MongoDB.
package blobstore

import (
	"path"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
)

var (
	// ErrNotFound indicates nothing is stored under the requested key.
	ErrNotFound = i.ErrNotFound
	// ErrInvalidKey indicates an empty key or one escaping the store root.
	ErrInvalidKey = i.ErrInvalidKey
)

// cleanKey normalizes key to a slash-separated relative path.
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrInvalidKey
	}
	rel := path.Clean(strings.TrimPrefix(key, "/"))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", ErrInvalidKey
	}
	return rel, nil
}
