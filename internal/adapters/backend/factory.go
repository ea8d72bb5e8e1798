// Package backend builds the cache lookup selected by the configuration.
package backend

import (
	"context"

	"go.trai.ch/cacheprobe/internal/adapters/actions"
	"go.trai.ch/cacheprobe/internal/adapters/local"
	"go.trai.ch/cacheprobe/internal/adapters/natskv"
	"go.trai.ch/cacheprobe/internal/adapters/redis"
	"go.trai.ch/cacheprobe/internal/adapters/s3"
	"go.trai.ch/cacheprobe/internal/adapters/telemetry"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/cacheprobe/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.LookupFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New constructs the lookup for cfg.Backend, wrapped in a TracedLookup.
// Nothing is dialed here; remote backends connect on their first Lookup.
func (f *Factory) New(_ context.Context, cfg domain.Config) (ports.CacheLookup, error) {
	var lookup ports.CacheLookup

	switch cfg.Backend {
	case domain.BackendActions:
		lookup = actions.NewClient(cfg.Actions)
	case domain.BackendLocal:
		lookup = local.NewStore(cfg.Local.Dir)
	case domain.BackendS3:
		lookup = s3.New(cfg.S3)
	case domain.BackendRedis:
		lookup = redis.New(cfg.Redis)
	case domain.BackendNATS:
		lookup = natskv.New(cfg.NATS)
	default:
		return nil, zerr.With(domain.ErrUnknownBackend, "backend", string(cfg.Backend))
	}

	return telemetry.NewTracedLookup(lookup, cfg.Backend), nil
}
