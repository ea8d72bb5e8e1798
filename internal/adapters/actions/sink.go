package actions

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/cacheprobe/internal/core/domain"
	"go.trai.ch/zerr"
)

// OutputFileEnv names the file the runner reads step outputs from.
const OutputFileEnv = "GITHUB_OUTPUT"

// Sink implements ports.OutputSink with the GitHub Actions runner protocol.
//
// Outputs are appended to the $GITHUB_OUTPUT file when the runner provides
// one, and emitted as set-output workflow commands on stdout otherwise.
type Sink struct {
	mu           sync.Mutex
	stdout       io.Writer
	outputFile   string
	newDelimiter func() string
}

// NewSink creates a Sink writing workflow commands to stdout.
func NewSink(stdout io.Writer) *Sink {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Sink{
		stdout:       stdout,
		outputFile:   os.Getenv(OutputFileEnv),
		newDelimiter: randomDelimiter,
	}
}

func randomDelimiter() string {
	return "ghadelimiter_" + uuid.NewString()
}

// SetOutput publishes a step output.
func (s *Sink) SetOutput(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outputFile != "" {
		return s.appendOutput(name, value)
	}

	line := "\n" + formatCommand("set-output", [][2]string{{"name", name}}, value) + "\n"
	if _, err := io.WriteString(s.stdout, line); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "output", name)
	}
	return nil
}

func (s *Sink) appendOutput(name, value string) error {
	delimiter := s.newDelimiter()
	if strings.Contains(name, delimiter) || strings.Contains(value, delimiter) {
		return zerr.With(domain.ErrInvalidOutput, "output", name)
	}

	//nolint:gosec // Path is provided by the runner
	f, err := os.OpenFile(s.outputFile, os.O_APPEND|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "file", s.outputFile)
	}

	_, err = fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "file", s.outputFile)
	}
	return nil
}

// Fail emits an error workflow command. The runner marks the step failed once
// the process exits non-zero.
func (s *Sink) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = io.WriteString(s.stdout, formatCommand("error", nil, message)+"\n")
}
