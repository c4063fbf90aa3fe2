package store

import (
	"context"
	"slices"
	"sync"

	"github.com/agentstation/shelf/pkg/books"
)

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithFailSave makes every Save return err without storing anything.
func WithFailSave(err error) MemoryOption {
	return func(m *Memory) {
		m.saveErr = err
	}
}

// WithLoadError makes every Load return err.
func WithLoadError(err error) MemoryOption {
	return func(m *Memory) {
		m.loadErr = err
	}
}

// Memory keeps the collection in process. It copies on load and save so
// callers never share the backing slice.
type Memory struct {
	mu      sync.RWMutex
	list    []books.Book
	saves   int
	saveErr error
	loadErr error
}

// NewMemory returns a memory store seeded with the given books.
func NewMemory(seed ...books.Book) *Memory {
	return &Memory{list: slices.Clone(seed)}
}

// NewMemoryWithOptions returns a seeded memory store with options applied.
func NewMemoryWithOptions(seed []books.Book, opts ...MemoryOption) *Memory {
	m := NewMemory(seed...)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Path returns an empty string; nothing is written to disk.
func (m *Memory) Path() string {
	return ""
}

// Load returns a copy of the stored collection.
func (m *Memory) Load(ctx context.Context) ([]books.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.loadErr != nil {
		return nil, m.loadErr
	}
	list := slices.Clone(m.list)
	if list == nil {
		list = []books.Book{}
	}
	return list, nil
}

// Save stores a copy of list.
func (m *Memory) Save(ctx context.Context, list []books.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	m.list = slices.Clone(list)
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// SetFailSave changes the error returned by Save; nil restores normal saving.
func (m *Memory) SetFailSave(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}
