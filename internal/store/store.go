// Package store persists the session record. The backing storage is a flat
// key-value namespace: an encrypted file in normal operation, a plaintext
// file when encryption setup fails, or Redis for headless deployments that
// share one session across processes.
package store

import "sync"

// Store is a synchronous key-value namespace. Implementations must be safe
// for concurrent use; every outgoing request reads from the store while the
// auth gateway writes to it.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(keys ...string) error
	Clear() error
	Namespace() string
}

// MemoryStore is a volatile Store. It is the last-resort fallback when no
// durable namespace can be opened, and the workhorse of the test suite.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]string)
	return nil
}

func (m *MemoryStore) Namespace() string { return "memory" }
