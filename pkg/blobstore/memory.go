package blobstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store for tests.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: map[string][]byte{}}
}

// Put stores data and returns a mem:// URL.
func (m *MemoryStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.blobs[key] = cp
	return m.URL(key), nil
}

// URL returns the mem:// URL for a key.
func (m *MemoryStore) URL(key string) string {
	return "mem://" + key
}

// Get returns stored bytes by key.
func (m *MemoryStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	return data, ok
}

// GetByURL returns stored bytes by their mem:// URL.
func (m *MemoryStore) GetByURL(url string) ([]byte, bool) {
	const scheme = "mem://"
	if len(url) <= len(scheme) {
		return nil, false
	}
	return m.Get(url[len(scheme):])
}

// Len reports the number of stored blobs.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blobs)
}

var _ Store = (*MemoryStore)(nil)

// String implements fmt.Stringer for test diagnostics.
func (m *MemoryStore) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("MemoryStore(%d blobs)", len(m.blobs))
}
