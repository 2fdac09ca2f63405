// Package cache implements the result cache for the acquisition layer: a
// fingerprint-keyed store of normalized result payloads with TTL expiry,
// lazy eviction, and best-effort hit counting.
//
// Caching here is an optimization, never a correctness requirement. Every
// storage failure is swallowed: a failed read is a miss, a failed write is
// ignored, and the surrounding query proceeds as though the cache were empty.
package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderly/travel-search-api/internal/infrastructure/timeutil"
)

// Entry is a cached result set keyed by query fingerprint. Entries are
// exclusively owned by the cache; no external component mutates them.
type Entry struct {
	// Fingerprint is the deterministic query key
	Fingerprint string

	// Payload is the serialized normalized result set
	Payload []byte

	// CreatedAt is when the entry was written
	CreatedAt time.Time

	// ExpiresAt is CreatedAt plus the query kind's TTL
	ExpiresAt time.Time

	// HitCount is the number of times the entry has been served
	HitCount int64
}

// Store is the persistence port for cache entries. Implementations exist for
// memory, postgres, and redis backends.
type Store interface {
	// Get returns the entry for the fingerprint, reporting whether it exists.
	Get(ctx context.Context, fingerprint string) (Entry, bool, error)

	// Put upserts an entry by fingerprint (last write wins).
	Put(ctx context.Context, entry Entry) error

	// Delete removes the entry for the fingerprint, if present.
	Delete(ctx context.Context, fingerprint string) error

	// IncrementHits adds one to the entry's hit counter.
	IncrementHits(ctx context.Context, fingerprint string) error
}

// sideEffectTimeout bounds the fire-and-forget maintenance operations so a
// hung store cannot leak goroutines indefinitely.
const sideEffectTimeout = 5 * time.Second

// Cache applies the result-cache semantics on top of a Store.
type Cache struct {
	store Store
	clock timeutil.Clock
	log   zerolog.Logger
}

// New creates a Cache over the given store.
func New(store Store, clock timeutil.Clock, log zerolog.Logger) *Cache {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Cache{
		store: store,
		clock: clock,
		log:   log,
	}
}

// Get returns the cached payload for the fingerprint, or a miss.
//
// A storage error is a miss. A found-but-expired entry is a miss and
// triggers an asynchronous best-effort delete. A valid hit asynchronously
// increments the hit counter; failure to increment is non-fatal and never
// blocks the read path.
func (c *Cache) Get(ctx context.Context, fingerprint string) ([]byte, bool) {
	entry, found, err := c.store.Get(ctx, fingerprint)
	if err != nil {
		c.log.Warn().Err(err).Str("fingerprint", fingerprint).Msg("Cache read failed, treating as miss")
		return nil, false
	}
	if !found {
		return nil, false
	}

	if c.clock.Now().After(entry.ExpiresAt) {
		go c.evict(fingerprint)
		return nil, false
	}

	go c.countHit(fingerprint)
	return entry.Payload, true
}

// Put upserts the payload under the fingerprint with the given TTL.
// Storage failures are swallowed and logged.
func (c *Cache) Put(ctx context.Context, fingerprint string, payload []byte, ttl time.Duration) {
	now := c.clock.Now()
	entry := Entry{
		Fingerprint: fingerprint,
		Payload:     payload,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}
	if err := c.store.Put(ctx, entry); err != nil {
		c.log.Warn().Err(err).Str("fingerprint", fingerprint).Msg("Cache write failed, result not cached")
	}
}

// evict deletes an expired entry, detached from the request that found it.
func (c *Cache) evict(fingerprint string) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	if err := c.store.Delete(ctx, fingerprint); err != nil {
		c.log.Debug().Err(err).Str("fingerprint", fingerprint).Msg("Expired entry eviction failed")
	}
}

// countHit increments the hit counter, detached from the serving request.
func (c *Cache) countHit(fingerprint string) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	if err := c.store.IncrementHits(ctx, fingerprint); err != nil {
		c.log.Debug().Err(err).Str("fingerprint", fingerprint).Msg("Hit count increment failed")
	}
}
