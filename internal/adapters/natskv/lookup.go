// Package natskv implements a cache lookup backed by a NATS JetStream key-value bucket.
package natskv

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/zerr"
)

// KeyValueGetter is the subset of jetstream.KeyValue used by Lookup.
type KeyValueGetter interface {
	Get(ctx context.Context, key string) (jetstream.KeyValueEntry, error)
}

// Lookup implements ports.CacheLookup. Entries are stored under domain.EntryID.
type Lookup struct {
	cfg domain.NATSConfig

	mu    sync.Mutex
	bound bool
	kv    KeyValueGetter
	nc    *nats.Conn
}

// New creates a Lookup for cfg. The server is dialed on the first Lookup, so
// connection failures surface as lookup failures.
func New(cfg domain.NATSConfig) *Lookup {
	return &Lookup{cfg: cfg}
}

// NewWithKV creates a Lookup over an existing bucket.
// A nil kv behaves like a bucket that does not exist.
func NewWithKV(kv KeyValueGetter) *Lookup {
	return &Lookup{kv: kv, bound: true}
}

// bind dials the server and binds the configured bucket once.
// A bucket that does not exist yet holds no entries and binds to nil.
func (l *Lookup) bind(ctx context.Context) (KeyValueGetter, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.bound {
		return l.kv, nil
	}

	nc, err := nats.Connect(l.cfg.URL)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBackendConnectFailed.Error()), "url", l.cfg.URL)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, zerr.Wrap(err, domain.ErrBackendConnectFailed.Error())
	}

	kv, err := js.KeyValue(ctx, l.cfg.Bucket)
	switch {
	case errors.Is(err, jetstream.ErrBucketNotFound):
	case err != nil:
		nc.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBackendConnectFailed.Error()), "bucket", l.cfg.Bucket)
	default:
		l.kv = kv
	}

	l.nc = nc
	l.bound = true
	return l.kv, nil
}

// Lookup implements ports.CacheLookup.
// Values holding a JSON cache entry enrich the result; other values only mark existence.
func (l *Lookup) Lookup(ctx context.Context, paths []string, key string) (*domain.CacheEntry, error) {
	kv, err := l.bind(ctx)
	if err != nil {
		return nil, err
	}
	if kv == nil {
		return nil, nil
	}

	id := domain.EntryID(key, paths)
	kve, err := kv.Get(ctx, id)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBackendLookupFailed.Error()), "key", id)
	}

	entry := domain.CacheEntry{}
	if value := kve.Value(); json.Valid(value) {
		_ = json.Unmarshal(value, &entry)
	}
	entry.Key = key
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = kve.Created()
	}
	return &entry, nil
}

// Close closes the connection opened by the first Lookup, if any.
func (l *Lookup) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.nc != nil {
		l.nc.Close()
		l.nc = nil
	}
	return nil
}
