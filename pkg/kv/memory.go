package kv

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore implements Store in process memory. go-cache's janitor
// evicts expired entries once per second, so expiry behaves like the
// Redis-backed store. Used for the KV_DRIVER=memory setup and as the
// fake persistence layer in tests.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an in-memory store with a 1s eviction janitor.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: gocache.New(gocache.NoExpiration, time.Second)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, found := s.cache.Get(key)
	if !found {
		return nil, false, nil
	}
	b, ok := val.([]byte)
	if !ok {
		return nil, false, nil
	}
	return b, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	s.cache.Set(key, value, ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

func (s *MemoryStore) TTL(_ context.Context, key string) (time.Duration, error) {
	_, expiresAt, found := s.cache.GetWithExpiration(key)
	if !found || expiresAt.IsZero() {
		return 0, nil
	}
	remaining := time.Until(expiresAt)
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
