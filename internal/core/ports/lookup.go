// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cacheprobe/internal/core/domain"
)

// CacheLookup checks whether a cache entry exists for a key and a set of paths.
//
//go:generate mockgen -source=lookup.go -destination=mocks/mock_lookup.go -package=mocks
type CacheLookup interface {
	// Lookup returns the entry stored for key and paths.
	// Returns nil, nil if no entry exists.
	Lookup(ctx context.Context, paths []string, key string) (*domain.CacheEntry, error)
}

// LookupFactory builds the CacheLookup selected by the configuration.
type LookupFactory interface {
	// New constructs a lookup for cfg.Backend.
	// If the returned lookup implements io.Closer, the caller must close it.
	New(ctx context.Context, cfg domain.Config) (CacheLookup, error)
}
