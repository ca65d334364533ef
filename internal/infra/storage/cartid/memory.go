package cartid

import (
	"context"
	"sync"
)

// MemoryStore хранилище в памяти процесса, используется при выключенном redis
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]string
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]string)}
}

func (s *MemoryStore) Load(_ context.Context, visitorID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[visitorID], nil
}

func (s *MemoryStore) Save(_ context.Context, visitorID, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[visitorID] = cartID
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, visitorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, visitorID)
	return nil
}
