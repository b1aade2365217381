package repositoryImp

import (
	"context"
	"sync"

	"lifeplan/pkg/kv/repository"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() repository.Store { return &memoryStore{data: map[string][]byte{}} }

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *memoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}
