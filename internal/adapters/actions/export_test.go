package actions

import "io"

// NewSinkForTest builds a Sink with a fixed heredoc delimiter.
func NewSinkForTest(stdout io.Writer, outputFile, delimiter string) *Sink {
	return &Sink{
		stdout:       stdout,
		outputFile:   outputFile,
		newDelimiter: func() string { return delimiter },
	}
}

// WithGOOSForTest overrides the operating system used for the cache version.
func WithGOOSForTest(goos string) ClientOption {
	return func(c *Client) {
		c.goos = goos
	}
}

// FormatCommandForTest exports formatCommand for testing purposes.
func FormatCommandForTest(command string, properties [][2]string, message string) string {
	return formatCommand(command, properties, message)
}
