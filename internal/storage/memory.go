package storage

import (
	"fmt"
	"sort"
	"sync"
)

// Memory is a map-backed Adapter. Fail(true) makes every write return
// ErrStorageUnavailable, the way a private-mode host would.
type Memory struct {
	mu      sync.Mutex
	values  map[string]string
	failing bool
	writes  int
}

func NewMemoryAdapter() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Load(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return fmt.Errorf("save %q: %w", key, ErrStorageUnavailable)
	}
	m.values[key] = value
	m.writes++
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return fmt.Errorf("remove %q: %w", key, ErrStorageUnavailable)
	}
	delete(m.values, key)
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Fail toggles simulated write failures.
func (m *Memory) Fail(on bool) {
	m.mu.Lock()
	m.failing = on
	m.mu.Unlock()
}

// Writes counts successful Save calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
