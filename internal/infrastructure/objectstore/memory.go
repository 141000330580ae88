package objectstore

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
)

// ErrKeyNotFound is returned by reads of absent keys.
var ErrKeyNotFound = keyNotFoundError{}

type keyNotFoundError struct{}

func (keyNotFoundError) Error() string { return "object key not found" }

// Memory is an in-memory object store. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{objects: make(map[string][]byte)}
}

func (m *Memory) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok, nil
}

func (m *Memory) SaveFile(ctx context.Context, key string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), content...)
	return nil
}

func (m *Memory) GetFile(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.objects[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), content...), nil
}

func (m *Memory) GetFileStream(ctx context.Context, key string) (io.ReadCloser, error) {
	content, err := m.GetFile(ctx, key)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	if strings.HasSuffix(key, "/") {
		for stored := range m.objects {
			if strings.HasPrefix(stored, key) {
				delete(m.objects, stored)
			}
		}
	}
	return nil
}

func (m *Memory) Move(ctx context.Context, fromKey, toKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !strings.HasSuffix(fromKey, "/") {
		content, ok := m.objects[fromKey]
		if !ok {
			return ErrKeyNotFound
		}
		m.objects[toKey] = content
		delete(m.objects, fromKey)
		return nil
	}

	var sources []string
	for stored := range m.objects {
		if strings.HasPrefix(stored, fromKey) {
			sources = append(sources, stored)
		}
	}
	for _, source := range sources {
		m.objects[toKey+strings.TrimPrefix(source, fromKey)] = m.objects[source]
	}
	for _, source := range sources {
		delete(m.objects, source)
	}
	return nil
}

func (m *Memory) ListDirectory(ctx context.Context, key string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	for stored := range m.objects {
		if stored == key || !strings.HasPrefix(stored, key) {
			continue
		}
		rest := strings.TrimPrefix(stored, key)
		if i := strings.Index(rest, "/"); i >= 0 {
			rest = rest[:i+1]
		}
		seen[key+rest] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for child := range seen {
		keys = append(keys, child)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *Memory) ListRecursive(ctx context.Context, key string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for stored := range m.objects {
		if strings.HasPrefix(stored, key) {
			keys = append(keys, stored)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *Memory) FileSize(ctx context.Context, key string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.objects[key]
	if !ok {
		return 0, ErrKeyNotFound
	}
	return int64(len(content)), nil
}

func (m *Memory) CreateDirectory(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = nil
	return nil
}
