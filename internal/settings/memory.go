package settings

import (
	"context"
	"sync"
)

// MemoryStore keeps settings in process memory only.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Load(_ context.Context) (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return FromMap(m.values), nil
}

func (m *MemoryStore) Save(_ context.Context, s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range s.ToMap() {
		m.values[k] = v
	}
	return nil
}

func (m *MemoryStore) Close() error { return nil }
