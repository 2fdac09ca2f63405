// Package redis provides a go-redis backed cache.Store for deployments that
// already run Redis and want cross-instance sharing without Postgres.
package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wanderly/travel-search-api/internal/cache"
)

// DefaultKeyPrefix namespaces cache entries in a shared Redis instance.
const DefaultKeyPrefix = "travelsearch:cache:"

// expirySlack keeps the Redis key alive a little past the logical expiry so
// the semantics layer, not Redis, decides staleness and eviction.
const expirySlack = time.Minute

// Store is a Redis implementation of cache.Store. Entries are stored as
// hashes so the hit counter can be incremented atomically with HINCRBY.
type Store struct {
	rdb    *redis.Client
	prefix string
}

// Option configures a Store.
type Option func(*Store)

// WithKeyPrefix overrides the key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// NewStore creates a Store over the given Redis client.
func NewStore(rdb *redis.Client, opts ...Option) *Store {
	s := &Store{
		rdb:    rdb,
		prefix: DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(fingerprint string) string {
	return s.prefix + fingerprint
}

// Get returns the entry for the fingerprint, reporting whether it exists.
func (s *Store) Get(ctx context.Context, fingerprint string) (cache.Entry, bool, error) {
	fields, err := s.rdb.HGetAll(ctx, s.key(fingerprint)).Result()
	if err != nil {
		return cache.Entry{}, false, err
	}
	if len(fields) == 0 {
		return cache.Entry{}, false, nil
	}

	entry := cache.Entry{
		Fingerprint: fingerprint,
		Payload:     []byte(fields["payload"]),
	}
	if createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"]); err == nil {
		entry.CreatedAt = createdAt
	}
	if expiresAt, err := time.Parse(time.RFC3339Nano, fields["expires_at"]); err == nil {
		entry.ExpiresAt = expiresAt
	}
	if hits, err := strconv.ParseInt(fields["hit_count"], 10, 64); err == nil {
		entry.HitCount = hits
	}
	return entry, true, nil
}

// Put upserts an entry by fingerprint and sets a physical expiry slightly
// past the logical one.
func (s *Store) Put(ctx context.Context, entry cache.Entry) error {
	key := s.key(entry.Fingerprint)

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, map[string]interface{}{
		"payload":    entry.Payload,
		"created_at": entry.CreatedAt.UTC().Format(time.RFC3339Nano),
		"expires_at": entry.ExpiresAt.UTC().Format(time.RFC3339Nano),
		"hit_count":  entry.HitCount,
	})
	if ttl := time.Until(entry.ExpiresAt) + expirySlack; ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Delete removes the entry for the fingerprint, if present.
func (s *Store) Delete(ctx context.Context, fingerprint string) error {
	return s.rdb.Del(ctx, s.key(fingerprint)).Err()
}

// IncrementHits adds one to the entry's hit counter.
func (s *Store) IncrementHits(ctx context.Context, fingerprint string) error {
	return s.rdb.HIncrBy(ctx, s.key(fingerprint), "hit_count", 1).Err()
}

var _ cache.Store = (*Store)(nil)
