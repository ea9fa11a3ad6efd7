package session

import (
	"context"
	"sync"
)

// MemoryTier is the scoped tier: values live only for the process lifetime.
type MemoryTier struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryTier() *MemoryTier {
	return &MemoryTier{values: make(map[string]string)}
}

func (t *MemoryTier) Get(_ context.Context, key string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	value, ok := t.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (t *MemoryTier) Set(_ context.Context, key, value string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.values[key] = value
	return nil
}

func (t *MemoryTier) Delete(_ context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.values, key)
	return nil
}
