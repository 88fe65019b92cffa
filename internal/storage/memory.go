package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and as a stand-in medium.
// It is safe for concurrent use. InTx provides mutual exclusion but no
// rollback; test callbacks are expected not to fail halfway.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) InTx(ctx context.Context, fn func(kv KV) error) error {
	return fn(&lockedKV{m: m})
}

// lockedKV reuses the MemoryStore's own locking per operation.
type lockedKV struct {
	m *MemoryStore
}

func (l *lockedKV) Get(ctx context.Context, key string) ([]byte, error) {
	return l.m.Get(ctx, key)
}

func (l *lockedKV) Set(ctx context.Context, key string, value []byte) error {
	return l.m.Set(ctx, key, value)
}

func (l *lockedKV) Delete(ctx context.Context, key string) error {
	return l.m.Delete(ctx, key)
}
