// Package commands implements the CLI commands for cacheprobe.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cacheprobe/internal/app"
	"go.trai.ch/cacheprobe/internal/build"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/cacheprobe/internal/core/ports"
)

// CLI represents the command line interface for cacheprobe.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Probe(ctx context.Context, opts app.ProbeOptions) (domain.Outcome, error)
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
// If logger supports JSON output, the --json-logs flag switches it.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:   "cacheprobe",
		Short: "Check whether a CI cache entry exists for a key",
		Long: "cacheprobe asks the cache backend whether an entry exists for a key and a set of paths\n" +
			"and reports the key and cache-hit step outputs. Inputs default to the INPUT_KEY and\n" +
			"INPUT_PATHS action inputs.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if enabled, _ := cmd.Flags().GetBool("json-logs"); enabled {
			if l, ok := c.logger.(jsonLogger); ok {
				l.SetJSON(true)
			}
		}
	}

	rootCmd.Flags().StringP("key", "k", "", "Cache key (default $INPUT_KEY)")
	rootCmd.Flags().StringArrayP("paths", "p", nil, "Cached path, repeatable (default $INPUT_PATHS)")
	rootCmd.Flags().StringP("backend", "b", "", "Cache backend: actions, local, s3, redis or nats (default from cacheprobe.yaml)")
	rootCmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, actions, or plain")
	rootCmd.Flags().Bool("trace", false, "Log the duration of every cache lookup")
	rootCmd.RunE = c.runProbe

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runProbe(cmd *cobra.Command, _ []string) error {
	key, _ := cmd.Flags().GetString("key")
	paths, _ := cmd.Flags().GetStringArray("paths")
	backend, _ := cmd.Flags().GetString("backend")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	trace, _ := cmd.Flags().GetBool("trace")

	_, err := c.app.Probe(cmd.Context(), app.ProbeOptions{
		Key:        key,
		Paths:      strings.Join(paths, "\n"),
		Backend:    backend,
		OutputMode: outputMode,
		Trace:      trace,
	})
	return err
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
