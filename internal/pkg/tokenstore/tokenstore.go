package tokenstore

import (
	"os"
	"strings"
	"sync"

	"barberbook/internal/pkg/errs"
)

// Store persists the single opaque session token. The browser original kept it
// in localStorage under one well-known key; here that key is a file path.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errs.Wrap(err, "failed to read session token")
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errs.Wrap(err, "failed to write session token")
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "failed to remove session token")
	}
	return nil
}

// MemoryStore keeps the token in memory only. Used when no token path is
// configured and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
