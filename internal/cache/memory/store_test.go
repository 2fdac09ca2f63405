package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderly/travel-search-api/internal/cache"
	"github.com/wanderly/travel-search-api/internal/cache/cachetest"
)

func TestStoreContract(t *testing.T) {
	cachetest.RunStoreContract(t, func(t *testing.T) cache.Store {
		return NewStore()
	})
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, cache.Entry{Fingerprint: "shared", Payload: []byte("x")}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _, _ = store.Get(ctx, "shared")
				_ = store.IncrementHits(ctx, "shared")
			}
		}()
	}
	wg.Wait()

	entry, found, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(1000), entry.HitCount)
	assert.Equal(t, 1, store.Len())
}

func TestIncrementHitsOnMissingEntry(t *testing.T) {
	store := NewStore()
	assert.NoError(t, store.IncrementHits(context.Background(), "gone"))
}
