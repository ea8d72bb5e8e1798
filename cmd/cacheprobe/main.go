// Package main is the entry point for the cacheprobe CI step.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cacheprobe/cmd/cacheprobe/commands"
	"go.trai.ch/cacheprobe/internal/app"
	"go.trai.ch/cacheprobe/internal/core/domain"
	_ "go.trai.ch/cacheprobe/internal/wiring"
)

// ComponentProvider builds the application components.
type ComponentProvider func(ctx context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, provideComponents))
}

func provideComponents(ctx context.Context) (*app.Components, error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	return components, err
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provide ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, err := provide(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}

	components.App.WithOutput(stdout, stderr)
	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Probe failures were already reported through the output sink.
		if errors.Is(err, domain.ErrProbeFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
