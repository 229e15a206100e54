package storage

import (
	"context"
	"sync"
)

// Memory is an in-process Adapter. It is the default backend and the one
// used by tests.
type Memory struct {
	mu    sync.Mutex
	data  map[string]string
	used  int64
	quota int64
}

// NewMemory returns an empty store. Keys and values count against quota
// bytes; quota <= 0 disables the limit.
func NewMemory(quota int64) *Memory {
	return &Memory{data: make(map[string]string), quota: quota}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldLen := -1
	if old, ok := m.data[key]; ok {
		oldLen = len(old)
	}
	if err := quotaCheck(m.quota, m.used, key, oldLen, len(value)); err != nil {
		return err
	}
	if oldLen >= 0 {
		m.used -= int64(len(key) + oldLen)
	}
	m.used += int64(len(key) + len(value))
	m.data[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
