package cart

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Store is the local key-value store the engine persists to. Load returns
// nil data (no error) when the key has never been written.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// FileStore keeps each key as a JSON file in a directory, the closest Go
// analogue to the browser's per-origin local storage. Writes go through a
// temp file and rename so a crash never leaves a half-written cart.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

func (fs *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(fs.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (fs *FileStore) Save(key string, data []byte) error {
	tmp := fs.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, fs.path(key))
}

// MemStore is an in-memory Store for tests and throwaway sessions.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (ms *MemStore) Load(key string) ([]byte, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.data[key], nil
}

func (ms *MemStore) Save(key string, data []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	ms.data[key] = cp
	return nil
}
