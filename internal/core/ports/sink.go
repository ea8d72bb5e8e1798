package ports

// OutputSink reports step outputs and the terminal failure signal to the host.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type OutputSink interface {
	// SetOutput publishes a named output value.
	SetOutput(name, value string) error
	// Fail reports a terminal failure carrying message.
	Fail(message string)
}
