// Package kv provides the key-value persistence adapter used for promo
// state: small JSON records under fixed keys, with expiry semantics.
package kv

import (
	"context"
	"time"
)

// Store is a key-value store with expiry semantics.
// A missing key is reported as (nil, false, nil), never as an error.
// A non-positive ttl stores the entry without expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// TTL returns the remaining lifetime of key, or 0 when the key is
	// absent or has no expiry.
	TTL(ctx context.Context, key string) (time.Duration, error)
	Ping(ctx context.Context) error
}
