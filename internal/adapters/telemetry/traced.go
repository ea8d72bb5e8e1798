// Package telemetry instruments cache lookups with OpenTelemetry.
package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/cacheprobe/internal/core/ports"
)

// InstrumentationName identifies spans created by this package.
const InstrumentationName = "go.trai.ch/cacheprobe"

// LookupSpanName is the name of the span wrapping every lookup.
const LookupSpanName = "cache.lookup"

// Span attribute keys.
const (
	AttrKey     = attribute.Key("cache.key")
	AttrBackend = attribute.Key("cache.backend")
	AttrPaths   = attribute.Key("cache.paths")
	AttrHit     = attribute.Key("cache.hit")
)

// TracedLookup decorates a ports.CacheLookup with one span per call.
// The tracer is resolved from the global provider on every call.
type TracedLookup struct {
	inner   ports.CacheLookup
	backend domain.Backend
}

// NewTracedLookup wraps inner.
func NewTracedLookup(inner ports.CacheLookup, backend domain.Backend) *TracedLookup {
	return &TracedLookup{inner: inner, backend: backend}
}

// Lookup implements ports.CacheLookup.
func (t *TracedLookup) Lookup(ctx context.Context, paths []string, key string) (*domain.CacheEntry, error) {
	ctx, span := otel.Tracer(InstrumentationName).Start(ctx, LookupSpanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			AttrKey.String(key),
			AttrBackend.String(string(t.backend)),
			AttrPaths.StringSlice(paths),
		),
	)
	defer span.End()

	entry, err := t.inner.Lookup(ctx, paths, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(AttrHit.Bool(entry != nil))
	return entry, nil
}

// Close closes the wrapped lookup if it holds resources.
func (t *TracedLookup) Close() error {
	if c, ok := t.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Unwrap returns the decorated lookup.
func (t *TracedLookup) Unwrap() ports.CacheLookup {
	return t.inner
}
