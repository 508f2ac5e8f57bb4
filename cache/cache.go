// Package cache memoizes composed pages. The content they are built from never
// changes while the process runs, so entries only expire by TTL.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCacheMiss   = errors.New("cache miss")
	ErrCacheClosed = errors.New("cache closed")
)

// Cacher stores opaque byte values by key.
type Cacher interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Stats() Stats
	Close() error
}

// Stats holds cache statistics.
type Stats struct {
	Backend string  `json:"backend"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Sets    int64   `json:"sets"`
	HitRate float64 `json:"hitRate"`
}

func hitRate(hits, misses int64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}

// Options selects and configures a backend. An empty RedisURL selects memory.
type Options struct {
	RedisURL   string
	Prefix     string
	DefaultTTL time.Duration
}

func New(opts Options) (Cacher, error) {
	if opts.RedisURL == "" {
		return NewMemoryCache(opts.DefaultTTL), nil
	}
	return NewRedisCache(RedisCacheOptions{
		URL:            opts.RedisURL,
		Prefix:         opts.Prefix,
		DefaultTTL:     opts.DefaultTTL,
		ConnectTimeout: 5 * time.Second,
	})
}
