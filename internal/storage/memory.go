package storage

import (
	"sync"
)

// MemoryConnector keeps the key/value tier in a map. It backs the memory engine and tests.
type MemoryConnector struct {
	kvReader
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryConnector(initial Batch) *MemoryConnector {
	m := &MemoryConnector{data: make(map[string][]byte, len(initial))}
	m.Apply(initial)
	m.kvReader = kvReader{get: m.get}
	return m
}

// Apply copies every entry of b into the store.
func (m *MemoryConnector) Apply(b Batch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range b {
		m.data[k] = append([]byte{}, v...)
	}
}

func (m *MemoryConnector) get(key []byte) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[string(key)]
	if !ok {
		return nil, false, nil
	}
	return append([]byte{}, v...), true, nil
}

// LatestState copies the state keys so later Apply calls do not leak into the view.
func (m *MemoryConnector) LatestState() (IStateSnapshot, error) {
	m.mu.RLock()
	view := make(map[string][]byte)
	for k, v := range m.data {
		if len(k) > 0 && (k[0] == accountPrefix[0] || k[0] == storagePrefix[0]) {
			view[k] = v
		}
	}
	m.mu.RUnlock()

	return stateReader{get: func(key []byte) ([]byte, bool, error) {
		v, ok := view[string(key)]
		if !ok {
			return nil, false, nil
		}
		return append([]byte{}, v...), true, nil
	}}, nil
}

func (m *MemoryConnector) Close() error {
	return nil
}
