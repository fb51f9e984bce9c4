package store

import (
	"context"
	"sync"
)

// Memory is an in-process Backend. FailWrites makes every Set fail with the
// given error until cleared.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	writes int

	FailWrites error
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return &IOError{Op: "write", Key: key, Err: m.FailWrites}
	}
	m.values[key] = value
	m.writes++
	return nil
}

// SetFailWrites toggles write failures.
func (m *Memory) SetFailWrites(err error) {
	m.mu.Lock()
	m.FailWrites = err
	m.mu.Unlock()
}

// Writes counts successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
