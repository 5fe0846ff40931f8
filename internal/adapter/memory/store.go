// Package memory implements the key/value persistence backend in process
// memory. Data lives as long as the process; it backs tests and ephemeral runs.
package memory

import (
	"context"
	"sync"
)

// Store is a map of string blobs guarded by a RWMutex.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

// Get returns the blob stored under key and whether it exists.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	return v, ok, nil
}

// Set replaces the blob stored under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op so the store satisfies the same lifecycle as SQLite.
func (s *Store) Close() error { return nil }
