package redis_test

import (
	"context"
	"errors"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cacheprobe/internal/adapters/redis"
	"go.trai.ch/cacheprobe/internal/core/domain"
)

type fakeExists struct {
	n    int64
	err  error
	keys []string
}

func (f *fakeExists) Exists(_ context.Context, keys ...string) *goredis.IntCmd {
	f.keys = keys
	return goredis.NewIntResult(f.n, f.err)
}

func TestLookup_Hit(t *testing.T) {
	t.Parallel()

	client := &fakeExists{n: 1}
	lookup := redis.NewWithClient(client, "cacheprobe")
	paths := []string{"node_modules"}

	entry, err := lookup.Lookup(context.Background(), paths, "npm-abc")
	require.NoError(t, err)
	require.NotNil(t, entry)

	want := "cacheprobe:npm-abc:" + domain.Fingerprint(paths)
	assert.Equal(t, []string{want}, client.keys)
	assert.Equal(t, "npm-abc", entry.Key)
	assert.Equal(t, want, entry.Location)
}

func TestLookup_Miss(t *testing.T) {
	t.Parallel()

	lookup := redis.NewWithClient(&fakeExists{n: 0}, "cacheprobe")

	entry, err := lookup.Lookup(context.Background(), []string{"target"}, "cargo-abc")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestLookup_Error(t *testing.T) {
	t.Parallel()

	lookup := redis.NewWithClient(&fakeExists{err: errors.New("connection refused")}, "cacheprobe")

	entry, err := lookup.Lookup(context.Background(), []string{"target"}, "cargo-abc")
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorContains(t, err, domain.ErrBackendLookupFailed.Error())
}

func TestEntryKey(t *testing.T) {
	t.Parallel()

	paths := []string{"a/"}
	assert.Equal(t, "k:"+domain.Fingerprint(paths), redis.EntryKey("", "k", paths))
	assert.Equal(t, "p:k:"+domain.Fingerprint(paths), redis.EntryKey("p", "k", paths))
}

func TestLookup_CloseWithoutOwnedClient(t *testing.T) {
	t.Parallel()

	lookup := redis.NewWithClient(&fakeExists{}, "")
	assert.NoError(t, lookup.Close())
}

func TestNew_Close(t *testing.T) {
	t.Parallel()

	lookup := redis.New(domain.RedisConfig{Addr: "127.0.0.1:0"})
	assert.NoError(t, lookup.Close())
}
