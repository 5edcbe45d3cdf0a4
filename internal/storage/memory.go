package storage

import (
	"context"
	"sync"
)

// MemorySessionStore is the single-process fallback when Redis is not
// configured.
type MemorySessionStore struct {
	mu  sync.Mutex
	ids map[string][]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{ids: make(map[string][]string)}
}

func (s *MemorySessionStore) Append(_ context.Context, sessionID, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[sessionID] = append(s.ids[sessionID], orderID)
	return nil
}

func (s *MemorySessionStore) IDs(_ context.Context, sessionID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.ids[sessionID]))
	copy(ids, s.ids[sessionID])
	return ids, nil
}
