// Package plain implements an output sink for runs outside GitHub Actions.
package plain

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Sink writes outputs as name=value lines and failures as error lines.
type Sink struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
}

// NewSink creates a Sink. Nil writers default to the process streams.
func NewSink(stdout, stderr io.Writer) *Sink {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Sink{stdout: stdout, stderr: stderr}
}

// SetOutput writes "name=value". Values spanning lines cannot be represented.
func (s *Sink) SetOutput(name, value string) error {
	if strings.ContainsAny(name, "=\n") || strings.Contains(value, "\n") {
		return zerr.With(domain.ErrInvalidOutput, "output", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.stdout, "%s=%s\n", name, value); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "output", name)
	}
	return nil
}

// Fail writes "error: message" to stderr.
func (s *Sink) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.stderr, "error: %s\n", message)
}
