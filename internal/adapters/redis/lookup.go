// Package redis implements a cache lookup backed by Redis key existence.
package redis

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/zerr"
)

// ExistsAPI is the subset of the Redis client used by Lookup.
type ExistsAPI interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// Lookup implements ports.CacheLookup. An entry exists when the key
// <prefix>:<key>:<fingerprint> exists.
type Lookup struct {
	client ExistsAPI
	prefix string
	closer func() error
}

// New creates a Lookup with a new client for cfg. The client connects lazily.
func New(cfg domain.RedisConfig) *Lookup {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	l := NewWithClient(client, cfg.Prefix)
	l.closer = client.Close
	return l
}

// NewWithClient creates a Lookup using an existing client.
func NewWithClient(client ExistsAPI, prefix string) *Lookup {
	return &Lookup{client: client, prefix: prefix}
}

// EntryKey returns the Redis key recorded for key and paths.
func EntryKey(prefix, key string, paths []string) string {
	parts := make([]string, 0, 3)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, key, domain.Fingerprint(paths))
	return strings.Join(parts, ":")
}

// Lookup implements ports.CacheLookup.
func (l *Lookup) Lookup(ctx context.Context, paths []string, key string) (*domain.CacheEntry, error) {
	entryKey := EntryKey(l.prefix, key, paths)

	n, err := l.client.Exists(ctx, entryKey).Result()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBackendLookupFailed.Error()), "key", entryKey)
	}
	if n == 0 {
		return nil, nil
	}

	return &domain.CacheEntry{Key: key, Location: entryKey}, nil
}

// Close releases the client created by New.
func (l *Lookup) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer()
}
