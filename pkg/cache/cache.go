package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer used by the SQL
// repositories. Implementations: Redis (production), Noop (session backend
// and tests).
type Cache interface {
	// Get fetches a value and unmarshals it into dest.
	// Returns found=false on a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the backing connection.
	Ping(ctx context.Context) error
}

type noop struct{}

// NewNoop returns a Cache that never hits. Every Get is a miss and every
// write succeeds without storing anything.
func NewNoop() Cache {
	return noop{}
}

func (noop) Get(_ context.Context, _ string, _ interface{}) (bool, error) { return false, nil }

func (noop) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error { return nil }

func (noop) Delete(_ context.Context, _ ...string) error { return nil }

func (noop) Ping(_ context.Context) error { return nil }
