package blobstore

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/quasilyte/gdata/v2"
)

// GdataStore keeps mazes in the per-user application data directory managed
// by gdata. All keys share one object; each key is a property of it.
type GdataStore struct {
	manager *gdata.Manager
	object  string
}

// NewGdataStore opens the gdata storage for appName and stores keys under object.
func NewGdataStore(appName, object string) (i.BlobStore, error) {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("opening gdata storage: %w", err)
	}
	return NewGdataStoreFromManager(manager, object), nil
}

// NewGdataStoreFromManager wraps an already opened gdata manager.
func NewGdataStoreFromManager(manager *gdata.Manager, object string) i.BlobStore {
	return &GdataStore{
		manager: manager,
		object:  object,
	}
}

// Put saves data as the property for key.
func (g *GdataStore) Put(key string, data []byte) error {
	prop, err := propName(key)
	if err != nil {
		return err
	}
	return g.manager.SaveObjectProp(g.object, prop, data)
}

// Get loads the property for key.
func (g *GdataStore) Get(key string) ([]byte, error) {
	prop, err := propName(key)
	if err != nil {
		return nil, err
	}
	if !g.manager.ObjectPropExists(g.object, prop) {
		return nil, ErrNotFound
	}
	return g.manager.LoadObjectProp(g.object, prop)
}

// propName flattens key into a single path element, since gdata properties
// are files directly inside the object directory.
func propName(key string) (string, error) {
	rel, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(rel, "/", "_"), nil
}
