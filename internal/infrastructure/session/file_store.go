// Package session implements the client-local session store: the durable
// holder of the current token consulted on app start.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// FileStore persists the session as a JSON file with 0600 permissions.
// All operations hold a mutex so a racing logout and login cannot
// interleave their read-modify-write.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a FileStore writing to path. The parent directory
// must exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get reads the stored session. A missing file means "no session" and
// returns nil, nil; a corrupt file is treated the same after removal.
func (s *FileStore) Get() (*ports.StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var stored ports.StoredSession
	if err := json.Unmarshal(data, &stored); err != nil {
		_ = os.Remove(s.path)
		return nil, nil
	}
	return &stored, nil
}

// Set atomically replaces the stored session via a temp-file rename.
func (s *FileStore) Set(session ports.StoredSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Path returns the backing file location (useful for logs).
func (s *FileStore) Path() string {
	return filepath.Clean(s.path)
}
