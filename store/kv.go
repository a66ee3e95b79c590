package store

import (
	"os"
	"path/filepath"
)

// Store is synchronous string key-value storage scoped to one shopper
// session. Get reports whether the record exists; Set overwrites the
// record in full.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// FileStore keeps one file per record under a session directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *FileStore) Set(key, value string) error {
	return os.WriteFile(filepath.Join(s.dir, key), []byte(value), 0o644)
}
