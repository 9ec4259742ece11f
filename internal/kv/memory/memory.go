// Package memory is an in-process kv.Store used by tests and by the
// "memory" backend.
package memory

import (
	"context"
	"sync"
)

type Store struct {
	mu     sync.RWMutex
	data   map[string]string
	writes int
}

func New() *Store {
	return &Store{data: make(map[string]string)}
}

// NewWith returns a store preloaded with data. Preloading is not counted as a write.
func NewWith(data map[string]string) *Store {
	s := New()
	for k, v := range data {
		s.data[k] = v
	}
	return s
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.writes++
	return nil
}

func (s *Store) Close() error { return nil }

// Writes reports how many Set calls have been made.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
