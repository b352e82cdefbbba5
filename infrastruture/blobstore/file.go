package blobstore

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/spf13/afero"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileStore keeps each key as a file below a root directory.
type FileStore struct {
	fs   afero.Fs
	root string
}

// NewFileStore creates a FileStore rooted at dir on the given filesystem.
// Use afero.NewOsFs() for real files.
func NewFileStore(fsys afero.Fs, dir string) i.BlobStore {
	return &FileStore{
		fs:   fsys,
		root: dir,
	}
}

// Put writes data to the file for key, creating parent directories as needed.
func (f *FileStore) Put(key string, data []byte) error {
	name, err := f.filename(key)
	if err != nil {
		return err
	}

	if err := f.fs.MkdirAll(filepath.Dir(name), dirPerm); err != nil {
		return err
	}
	return afero.WriteFile(f.fs, name, data, filePerm)
}

// Get reads the file for key.
func (f *FileStore) Get(key string) ([]byte, error) {
	name, err := f.filename(key)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(f.fs, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (f *FileStore) filename(key string) (string, error) {
	rel, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(f.root, filepath.FromSlash(rel)), nil
}
