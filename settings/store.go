package settings

import (
	"errors"
	"sort"
	"sync"
)

var (
	// ErrKeyNotFound is returned when a store holds no value for a key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidKey is returned for empty keys.
	ErrInvalidKey = errors.New("key is invalid")
)

// Store is the persisted settings tier. Get returns ErrKeyNotFound for
// missing keys; any other error is also treated as absent by Reader.
type Store interface {
	Get(key string) (string, error)
}

// Snapshotter is implemented by stores that can read all of their values in
// one pass. Reader.Snapshot uses it to avoid a round trip per key.
type Snapshotter interface {
	Snapshot() (Store, error)
}

// MemoryStore is an in-memory Store safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns a MemoryStore pre-populated with seed.
func NewMemoryStore(seed map[string]string) *MemoryStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MemoryStore{values: values}
}

// Get implements Store.
func (m *MemoryStore) Get(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

// Set stores value under key.
func (m *MemoryStore) Set(key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Delete removes key.
func (m *MemoryStore) Delete(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; !ok {
		return ErrKeyNotFound
	}
	delete(m.values, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
