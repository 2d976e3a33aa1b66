package cart

import (
	"context"
	"sync"
)

// Storage is the persistence port for cart line lists. Implementations hold
// the serialized cart under a fixed namespace keyed by session id; the store
// treats every write as best-effort.
type Storage interface {
	Load(ctx context.Context, sessionID string) (Lines, error)
	Save(ctx context.Context, sessionID string, lines Lines) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStorage keeps carts in process memory. Used in tests and as a
// fallback when Redis is not configured.
type MemoryStorage struct {
	mu    sync.RWMutex
	carts map[string]Lines
}

// NewMemoryStorage builds an empty in-memory storage adapter.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string]Lines)}
}

func (m *MemoryStorage) Load(_ context.Context, sessionID string) (Lines, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lines, ok := m.carts[sessionID]
	if !ok {
		return nil, nil
	}
	copied := make(Lines, len(lines))
	copy(copied, lines)
	return copied, nil
}

func (m *MemoryStorage) Save(_ context.Context, sessionID string, lines Lines) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make(Lines, len(lines))
	copy(copied, lines)
	m.carts[sessionID] = copied
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	return nil
}
