// Package memstore provides an in-memory KeyValueStore.
package memstore

import (
	"context"
	"sync"

	"github.com/runoshun/ticktick/internal/domain"
)

// Store keeps values in process memory. Nothing survives the process.
type Store struct {
	values map[string]string
	mu     sync.RWMutex
}

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get returns the value for key and whether it exists.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Delete removes key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

var _ domain.KeyValueStore = (*Store)(nil)
