// Package cachetest provides a shared behavioral contract for cache.Store
// implementations. Every adapter (memory, postgres, redis) must pass the
// same suite so the semantics layer can treat them interchangeably.
package cachetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderly/travel-search-api/internal/cache"
)

// RunStoreContract exercises the cache.Store contract against a fresh store
// produced by newStore for each subtest.
func RunStoreContract(t *testing.T, newStore func(t *testing.T) cache.Store) {
	t.Helper()
	ctx := context.Background()

	entry := func(fingerprint string) cache.Entry {
		now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
		return cache.Entry{
			Fingerprint: fingerprint,
			Payload:     []byte(`[{"id":"offer-1"}]`),
			CreatedAt:   now,
			ExpiresAt:   now.Add(15 * time.Minute),
		}
	}

	t.Run("get missing fingerprint reports absent", func(t *testing.T) {
		store := newStore(t)

		_, found, err := store.Get(ctx, "flight:absent")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("put then get roundtrips the entry", func(t *testing.T) {
		store := newStore(t)
		want := entry("flight:JFK:LHR:2025-03-15::1:ECONOMY")

		require.NoError(t, store.Put(ctx, want))

		got, found, err := store.Get(ctx, want.Fingerprint)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, want.Payload, got.Payload)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
		assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))
	})

	t.Run("put overwrites by fingerprint, last write wins", func(t *testing.T) {
		store := newStore(t)
		first := entry("hotel:PAR:2025-03-15:2025-03-17:2:1")
		require.NoError(t, store.Put(ctx, first))

		second := first
		second.Payload = []byte(`[{"id":"offer-2"}]`)
		second.ExpiresAt = first.ExpiresAt.Add(15 * time.Minute)
		require.NoError(t, store.Put(ctx, second))

		got, found, err := store.Get(ctx, first.Fingerprint)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, second.Payload, got.Payload)
		assert.True(t, second.ExpiresAt.Equal(got.ExpiresAt))
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		store := newStore(t)
		e := entry("location:sao")
		require.NoError(t, store.Put(ctx, e))
		require.NoError(t, store.Delete(ctx, e.Fingerprint))

		_, found, err := store.Get(ctx, e.Fingerprint)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete of a missing entry is a no-op", func(t *testing.T) {
		store := newStore(t)
		assert.NoError(t, store.Delete(ctx, "inspiration:BOS"))
	})

	t.Run("increment hits accumulates", func(t *testing.T) {
		store := newStore(t)
		e := entry("flight:BOS:CDG:2025-06-01::2:BUSINESS")
		require.NoError(t, store.Put(ctx, e))

		require.NoError(t, store.IncrementHits(ctx, e.Fingerprint))
		require.NoError(t, store.IncrementHits(ctx, e.Fingerprint))

		got, found, err := store.Get(ctx, e.Fingerprint)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, int64(2), got.HitCount)
	})
}
