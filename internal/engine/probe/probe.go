// Package probe implements the cache probe: one existence check for a key and
// a set of paths, reported as step outputs.
package probe

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/cacheprobe/internal/core/ports"
)

// Probe checks the cache for a single key and reports the outcome.
type Probe struct {
	lookup ports.CacheLookup
	sink   ports.OutputSink
	logger ports.Logger
}

// New creates a new Probe.
func New(lookup ports.CacheLookup, sink ports.OutputSink, logger ports.Logger) *Probe {
	return &Probe{
		lookup: lookup,
		sink:   sink,
		logger: logger,
	}
}

// Run performs exactly one lookup for in and reports the result.
//
// The key output is set before the lookup so callers can correlate even when
// the lookup fails. A lookup error is reported through the sink with the
// collaborator's own message and returned joined with domain.ErrProbeFailed;
// no cache-hit output is set in that case.
func (p *Probe) Run(ctx context.Context, in domain.Inputs) (domain.Outcome, error) {
	if err := p.sink.SetOutput(domain.OutputKey, in.Key); err != nil {
		return domain.Outcome{}, p.fail(err)
	}

	entry, err := p.lookup.Lookup(ctx, in.Paths, in.Key)
	if err != nil {
		return domain.Outcome{}, p.fail(err)
	}

	hit := entry != nil
	if hit {
		p.logger.Info(availableMessage(in.Key, entry))
	} else {
		p.logger.Info(domain.MissingPrefix + in.Key)
	}

	if err := p.sink.SetOutput(domain.OutputCacheHit, strconv.FormatBool(hit)); err != nil {
		return domain.Outcome{}, p.fail(err)
	}

	return domain.Outcome{Key: in.Key, Hit: hit}, nil
}

func (p *Probe) fail(err error) error {
	p.sink.Fail(err.Error())
	return errors.Join(domain.ErrProbeFailed, err)
}

func availableMessage(key string, entry *domain.CacheEntry) string {
	msg := domain.AvailablePrefix + key
	if entry.Size > 0 {
		msg += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(entry.Size)))
	}
	return msg
}
