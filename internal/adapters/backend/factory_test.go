package backend_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cacheprobe/internal/adapters/actions"
	"go.trai.ch/cacheprobe/internal/adapters/backend"
	"go.trai.ch/cacheprobe/internal/adapters/local"
	"go.trai.ch/cacheprobe/internal/adapters/natskv"
	"go.trai.ch/cacheprobe/internal/adapters/redis"
	"go.trai.ch/cacheprobe/internal/adapters/s3"
	"go.trai.ch/cacheprobe/internal/adapters/telemetry"
	"go.trai.ch/cacheprobe/internal/core/domain"
)

func TestFactory_New(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig()
	cfg.Actions.URL = "https://cache.example/"
	cfg.Local.Dir = filepath.Join(t.TempDir(), "store")
	cfg.S3.Bucket = "ci-cache"
	cfg.NATS.URL = "nats://127.0.0.1:1"

	tests := []struct {
		name    string
		backend domain.Backend
		check   func(t *testing.T, inner any)
	}{
		{
			name:    "actions",
			backend: domain.BackendActions,
			check: func(t *testing.T, inner any) {
				t.Helper()
				assert.IsType(t, &actions.Client{}, inner)
			},
		},
		{
			name:    "local",
			backend: domain.BackendLocal,
			check: func(t *testing.T, inner any) {
				t.Helper()
				assert.IsType(t, &local.Store{}, inner)
			},
		},
		{
			name:    "redis",
			backend: domain.BackendRedis,
			check: func(t *testing.T, inner any) {
				t.Helper()
				assert.IsType(t, &redis.Lookup{}, inner)
			},
		},
		{
			name:    "s3 without credentials",
			backend: domain.BackendS3,
			check: func(t *testing.T, inner any) {
				t.Helper()
				assert.IsType(t, &s3.Lookup{}, inner)
			},
		},
		{
			name:    "nats without a server",
			backend: domain.BackendNATS,
			check: func(t *testing.T, inner any) {
				t.Helper()
				assert.IsType(t, &natskv.Lookup{}, inner)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cfg
			c.Backend = tt.backend

			lookup, err := backend.NewFactory().New(context.Background(), c)
			require.NoError(t, err)

			traced, ok := lookup.(*telemetry.TracedLookup)
			require.True(t, ok, "lookups are always traced")
			tt.check(t, traced.Unwrap())
			assert.NoError(t, traced.Close())
		})
	}
}

func TestFactory_New_UnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig()
	cfg.Backend = "memcached"

	lookup, err := backend.NewFactory().New(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, lookup)
	assert.ErrorContains(t, err, domain.ErrUnknownBackend.Error())
}

func TestFactory_New_LocalLookupMisses(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig()
	cfg.Backend = domain.BackendLocal
	cfg.Local.Dir = t.TempDir()

	lookup, err := backend.NewFactory().New(context.Background(), cfg)
	require.NoError(t, err)

	entry, err := lookup.Lookup(context.Background(), []string{"node_modules"}, "npm-abc")
	require.NoError(t, err)
	assert.Nil(t, entry)
}
