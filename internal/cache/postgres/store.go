// Package postgres provides a pgx-backed cache.Store so cached results
// survive process restarts and are shared across instances.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderly/travel-search-api/internal/cache"
)

// Schema is the table backing the result cache.
const Schema = `
CREATE TABLE IF NOT EXISTS search_cache (
	fingerprint TEXT PRIMARY KEY,
	payload     BYTEA NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	expires_at  TIMESTAMPTZ NOT NULL,
	hit_count   BIGINT NOT NULL DEFAULT 0
);
`

// Store is a Postgres implementation of cache.Store.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store over the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the cache table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := s.pool.Exec(ctx, Schema)
	return err
}

// Get returns the entry for the fingerprint, reporting whether it exists.
func (s *Store) Get(ctx context.Context, fingerprint string) (cache.Entry, bool, error) {
	if s.pool == nil {
		return cache.Entry{}, false, errors.New("nil postgres pool")
	}
	row := s.pool.QueryRow(ctx, `
		SELECT payload, created_at, expires_at, hit_count
		FROM search_cache
		WHERE fingerprint = $1
	`, fingerprint)

	entry := cache.Entry{Fingerprint: fingerprint}
	if err := row.Scan(&entry.Payload, &entry.CreatedAt, &entry.ExpiresAt, &entry.HitCount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cache.Entry{}, false, nil
		}
		return cache.Entry{}, false, err
	}
	entry.CreatedAt = entry.CreatedAt.UTC()
	entry.ExpiresAt = entry.ExpiresAt.UTC()
	return entry, true, nil
}

// Put upserts an entry by fingerprint. An overwrite resets the hit counter,
// since the payload is a fresh result set.
func (s *Store) Put(ctx context.Context, entry cache.Entry) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO search_cache (fingerprint, payload, created_at, expires_at, hit_count)
		VALUES ($1, $2, $3, $4, 0)
		ON CONFLICT (fingerprint)
		DO UPDATE SET
			payload = EXCLUDED.payload,
			created_at = EXCLUDED.created_at,
			expires_at = EXCLUDED.expires_at,
			hit_count = 0
	`,
		entry.Fingerprint,
		entry.Payload,
		entry.CreatedAt.UTC(),
		entry.ExpiresAt.UTC(),
	)
	return err
}

// Delete removes the entry for the fingerprint, if present.
func (s *Store) Delete(ctx context.Context, fingerprint string) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := s.pool.Exec(ctx, `DELETE FROM search_cache WHERE fingerprint = $1`, fingerprint)
	return err
}

// IncrementHits adds one to the entry's hit counter.
func (s *Store) IncrementHits(ctx context.Context, fingerprint string) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := s.pool.Exec(ctx, `
		UPDATE search_cache SET hit_count = hit_count + 1 WHERE fingerprint = $1
	`, fingerprint)
	return err
}

var _ cache.Store = (*Store)(nil)
