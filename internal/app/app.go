// Package app implements the application layer for cacheprobe.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/cacheprobe/internal/adapters/actions"
	"go.trai.ch/cacheprobe/internal/adapters/detector"
	"go.trai.ch/cacheprobe/internal/adapters/plain"
	"go.trai.ch/cacheprobe/internal/adapters/telemetry"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/cacheprobe/internal/core/ports"
	"go.trai.ch/cacheprobe/internal/engine/probe"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	factory      ports.LookupFactory
	logger       ports.Logger
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, factory ports.LookupFactory, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		factory:      factory,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput sets the streams the output sinks write to.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// ProbeOptions configuration for the Probe method.
// Empty Key, Paths and Backend fall back to the action inputs.
type ProbeOptions struct {
	Key        string
	Paths      string
	Backend    string
	OutputMode string
	Trace      bool
}

// Probe runs one cache probe.
//
// Missing inputs and lookup failures are reported through the output sink and
// returned joined with domain.ErrProbeFailed. Configuration and backend setup
// errors are returned as they are.
func (a *App) Probe(ctx context.Context, opts ProbeOptions) (domain.Outcome, error) {
	// 1. Choose the output sink
	sink := a.newSink(opts.OutputMode)

	// 2. Validate inputs before touching any backend
	in, err := domain.NewInputs(
		firstNonEmpty(opts.Key, actions.Input(domain.InputKey)),
		firstNonEmpty(opts.Paths, actions.Input(domain.InputPaths)),
	)
	if err != nil {
		sink.Fail(err.Error())
		return domain.Outcome{}, errors.Join(domain.ErrProbeFailed, err)
	}

	// 3. Load and validate the configuration
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return domain.Outcome{}, zerr.Wrap(err, "failed to load configuration")
	}
	if backend := firstNonEmpty(opts.Backend, actions.Input(domain.InputBackend)); backend != "" {
		cfg.Backend = domain.Backend(backend)
	}
	if err := a.configLoader.Validate(cfg); err != nil {
		return domain.Outcome{}, err
	}

	// 4. Initialize Telemetry
	if opts.Trace {
		shutdown := telemetry.Setup(a.logger)
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
	}

	// 5. Build the lookup
	lookup, err := a.factory.New(ctx, *cfg)
	if err != nil {
		return domain.Outcome{}, zerr.With(zerr.Wrap(err, "failed to initialize cache backend"), "backend", string(cfg.Backend))
	}
	if closer, ok := lookup.(io.Closer); ok {
		defer func() {
			if closeErr := closer.Close(); closeErr != nil {
				a.logger.Warn("failed to close cache backend: " + closeErr.Error())
			}
		}()
	}

	// 6. Run the probe
	return probe.New(lookup, sink, a.logger).Run(ctx, in)
}

func (a *App) newSink(outputMode string) ports.OutputSink {
	mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
	if mode == detector.ModeActions {
		return actions.NewSink(a.stdout)
	}
	return plain.NewSink(a.stdout, a.stderr)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
