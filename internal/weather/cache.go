package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores recent lookups keyed by city.
type Cache interface {
	Get(ctx context.Context, city string) (Conditions, bool, error)
	Set(ctx context.Context, city string, cond Conditions, ttl time.Duration) error
}

func cacheKey(city string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(city))
}

type memoryEntry struct {
	cond      Conditions
	expiresAt time.Time
}

// MemoryCache is an in-process TTL cache.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache(now func() time.Time) *MemoryCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{entries: make(map[string]memoryEntry), now: now}
}

func (m *MemoryCache) Get(_ context.Context, city string) (Conditions, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := cacheKey(city)
	entry, ok := m.entries[key]
	if !ok {
		return Conditions{}, false, nil
	}
	if !m.now().Before(entry.expiresAt) {
		delete(m.entries, key)
		return Conditions{}, false, nil
	}
	return entry.cond, true, nil
}

func (m *MemoryCache) Set(_ context.Context, city string, cond Conditions, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[cacheKey(city)] = memoryEntry{cond: cond, expiresAt: m.now().Add(ttl)}
	return nil
}

// RedisCache shares lookups across API instances.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// NewRedisClient parses a redis:// URL and checks connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return client, nil
}

func (r *RedisCache) Get(ctx context.Context, city string) (Conditions, bool, error) {
	data, err := r.client.Get(ctx, cacheKey(city)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Conditions{}, false, nil
		}
		return Conditions{}, false, fmt.Errorf("redis get: %w", err)
	}
	var cond Conditions
	if err := json.Unmarshal([]byte(data), &cond); err != nil {
		return Conditions{}, false, fmt.Errorf("redis decode: %w", err)
	}
	return cond, true, nil
}

func (r *RedisCache) Set(ctx context.Context, city string, cond Conditions, ttl time.Duration) error {
	data, err := json.Marshal(cond)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, cacheKey(city), string(data), ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = (*RedisCache)(nil)
)
