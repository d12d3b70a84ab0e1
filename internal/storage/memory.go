package storage

import (
	"context"
	"sync"
)

// Memory keeps entries in process memory. Used by tests and STORAGE_DRIVER=memory.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Get(_ context.Context, key string) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return Entry{Value: append([]byte(nil), e.Value...), Revision: e.Revision}, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte, expected int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.entries[key]
	if (expected == 0 && ok) || (expected != 0 && (!ok || cur.Revision != expected)) {
		return 0, ErrRevisionConflict
	}

	rev := cur.Revision + 1
	m.entries[key] = Entry{Value: append([]byte(nil), value...), Revision: rev}
	return rev, nil
}

func (m *Memory) Close() error {
	return nil
}
