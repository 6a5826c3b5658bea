package session

import (
	"sync"

	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// MemoryStore is the non-durable SessionStore used in tests.
type MemoryStore struct {
	mu      sync.Mutex
	current *ports.StoredSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (*ports.StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, nil
	}
	stored := *s.current
	return &stored, nil
}

func (s *MemoryStore) Set(session ports.StoredSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &session
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}
