// Package memory provides an in-memory cache.Store for tests and
// single-process deployments.
package memory

import (
	"context"
	"sync"

	"github.com/wanderly/travel-search-api/internal/cache"
)

// Store is an in-memory implementation of cache.Store.
// It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex
	m  map[string]cache.Entry
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		m: make(map[string]cache.Entry),
	}
}

// Get returns the entry for the fingerprint, reporting whether it exists.
func (s *Store) Get(ctx context.Context, fingerprint string) (cache.Entry, bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.m[fingerprint]
	return entry, ok, nil
}

// Put upserts an entry by fingerprint.
func (s *Store) Put(ctx context.Context, entry cache.Entry) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[entry.Fingerprint] = entry
	return nil
}

// Delete removes the entry for the fingerprint, if present.
func (s *Store) Delete(ctx context.Context, fingerprint string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, fingerprint)
	return nil
}

// IncrementHits adds one to the entry's hit counter. Missing entries are a
// no-op: the entry may have been evicted since the hit was counted.
func (s *Store) IncrementHits(ctx context.Context, fingerprint string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.m[fingerprint]
	if !ok {
		return nil
	}
	entry.HitCount++
	s.m[fingerprint] = entry
	return nil
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

var _ cache.Store = (*Store)(nil)
