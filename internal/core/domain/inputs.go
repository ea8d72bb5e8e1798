package domain

import "strings"

// MissingInputError reports a required input that is blank or not supplied.
type MissingInputError struct {
	Name string
}

func (e *MissingInputError) Error() string {
	return "Input required and not supplied: " + e.Name
}

// Is reports whether target is ErrMissingInput.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// Inputs is the configuration of a single probe invocation.
type Inputs struct {
	Key   string
	Paths []string
}

// NewInputs builds Inputs from the raw key and newline-delimited paths.
// Both must be present after trimming.
func NewInputs(key, rawPaths string) (Inputs, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Inputs{}, &MissingInputError{Name: InputKey}
	}

	paths := ParsePaths(rawPaths)
	if len(paths) == 0 {
		return Inputs{}, &MissingInputError{Name: InputPaths}
	}

	return Inputs{Key: key, Paths: paths}, nil
}

// ParsePaths splits raw on newlines, trims every segment and drops empty ones.
// Order is preserved.
func ParsePaths(raw string) []string {
	segments := strings.Split(raw, "\n")
	paths := make([]string, 0, len(segments))
	for _, segment := range segments {
		if p := strings.TrimSpace(segment); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
