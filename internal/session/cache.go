package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

// UserCache persists the last fetched user profile for a session so
// authenticated pages can render without refetching it on every
// request. Entries are keyed by a digest of the token, never by the
// token itself. A missing entry is (nil, nil); a corrupt entry is
// discarded and reported as missing rather than returned.
type UserCache interface {
	Get(ctx context.Context, token string) (*model.User, error)
	Set(ctx context.Context, token string, u model.User) error
	Delete(ctx context.Context, token string) error
}

// cacheKey derives the storage key from the token. Only the SHA-256
// hex digest is stored so a leaked cache dump does not expose usable
// credentials.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "user:" + hex.EncodeToString(sum[:])
}

// NewUserCache returns a Redis-backed cache when a client is
// available and falls back to an in-process cache otherwise, so the
// application keeps working without a Redis server.
func NewUserCache(rdb *redis.Client, ttl time.Duration) UserCache {
	if rdb == nil {
		return NewMemoryUserCache()
	}
	return &RedisUserCache{rdb: rdb, ttl: ttl}
}

// RedisUserCache stores the serialized user in Redis with a TTL
// matching the session cookie lifetime.
type RedisUserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func (uc *RedisUserCache) Get(ctx context.Context, token string) (*model.User, error) {
	raw, err := uc.rdb.Get(ctx, cacheKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		// Corrupt entry: drop it and report a cache miss.
		_ = uc.rdb.Del(ctx, cacheKey(token)).Err()
		return nil, nil
	}
	return &u, nil
}

func (uc *RedisUserCache) Set(ctx context.Context, token string, u model.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return uc.rdb.Set(ctx, cacheKey(token), raw, uc.ttl).Err()
}

func (uc *RedisUserCache) Delete(ctx context.Context, token string) error {
	return uc.rdb.Del(ctx, cacheKey(token)).Err()
}

// MemoryUserCache is the single-process fallback used when Redis is
// unavailable, and by tests. It holds serialized users so the corrupt
// entry path behaves the same as the Redis implementation.
type MemoryUserCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryUserCache() *MemoryUserCache {
	return &MemoryUserCache{entries: map[string][]byte{}}
}

func (uc *MemoryUserCache) Get(_ context.Context, token string) (*model.User, error) {
	uc.mu.RLock()
	raw, ok := uc.entries[cacheKey(token)]
	uc.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		uc.mu.Lock()
		delete(uc.entries, cacheKey(token))
		uc.mu.Unlock()
		return nil, nil
	}
	return &u, nil
}

func (uc *MemoryUserCache) Set(_ context.Context, token string, u model.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	uc.mu.Lock()
	uc.entries[cacheKey(token)] = raw
	uc.mu.Unlock()
	return nil
}

func (uc *MemoryUserCache) Delete(_ context.Context, token string) error {
	uc.mu.Lock()
	delete(uc.entries, cacheKey(token))
	uc.mu.Unlock()
	return nil
}

// put exists for tests that need to seed a raw (possibly corrupt)
// entry without going through Set.
func (uc *MemoryUserCache) put(token string, raw []byte) {
	uc.mu.Lock()
	uc.entries[cacheKey(token)] = raw
	uc.mu.Unlock()
}
