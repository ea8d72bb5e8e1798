package natskv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cacheprobe/internal/adapters/natskv"
	"go.trai.ch/cacheprobe/internal/core/domain"
)

type fakeEntry struct {
	jetstream.KeyValueEntry
	value   []byte
	created time.Time
}

func (e fakeEntry) Value() []byte      { return e.value }
func (e fakeEntry) Created() time.Time { return e.created }

type fakeKV struct {
	entries map[string]fakeEntry
	err     error
}

func (f *fakeKV) Get(_ context.Context, key string) (jetstream.KeyValueEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.entries[key]
	if !ok {
		return nil, jetstream.ErrKeyNotFound
	}
	return e, nil
}

func TestLookup_HitWithJSONEntry(t *testing.T) {
	t.Parallel()

	paths := []string{"node_modules"}
	kv := &fakeKV{entries: map[string]fakeEntry{
		domain.EntryID("npm-abc", paths): {
			value:   []byte(`{"location":"nats://cache/npm-abc","size":4096}`),
			created: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		},
	}}

	entry, err := natskv.NewWithKV(kv).Lookup(context.Background(), paths, "npm-abc")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "npm-abc", entry.Key)
	assert.Equal(t, "nats://cache/npm-abc", entry.Location)
	assert.Equal(t, int64(4096), entry.Size)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), entry.CreatedAt)
}

func TestLookup_HitWithOpaqueValue(t *testing.T) {
	t.Parallel()

	paths := []string{"target"}
	kv := &fakeKV{entries: map[string]fakeEntry{
		domain.EntryID("cargo-abc", paths): {value: []byte("1")},
	}}

	entry, err := natskv.NewWithKV(kv).Lookup(context.Background(), paths, "cargo-abc")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "cargo-abc", entry.Key)
	assert.Zero(t, entry.Size)
}

func TestLookup_KeyNotFoundIsMiss(t *testing.T) {
	t.Parallel()

	entry, err := natskv.NewWithKV(&fakeKV{}).Lookup(context.Background(), []string{"target"}, "cargo-abc")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestLookup_Error(t *testing.T) {
	t.Parallel()

	kv := &fakeKV{err: errors.New("nats: timeout")}
	entry, err := natskv.NewWithKV(kv).Lookup(context.Background(), []string{"target"}, "cargo-abc")
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorContains(t, err, domain.ErrBackendLookupFailed.Error())
}

func TestLookup_NoBucketIsMiss(t *testing.T) {
	t.Parallel()

	lookup := natskv.NewWithKV(nil)
	entry, err := lookup.Lookup(context.Background(), []string{"target"}, "cargo-abc")
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.NoError(t, lookup.Close())
}

func TestLookup_UnreachableServerFailsLookup(t *testing.T) {
	t.Parallel()

	lookup := natskv.New(domain.NATSConfig{URL: "nats://127.0.0.1:1", Bucket: "cacheprobe"})
	t.Cleanup(func() { _ = lookup.Close() })

	entry, err := lookup.Lookup(context.Background(), []string{"target"}, "cargo-abc")
	require.Error(t, err)
	assert.Nil(t, entry)
	assert.ErrorContains(t, err, domain.ErrBackendConnectFailed.Error())
	assert.ErrorContains(t, err, "no servers available")
}
