// Package actions integrates the probe with the GitHub Actions runner: action
// inputs, step outputs, workflow commands and the Actions cache service.
package actions

import (
	"os"
	"strings"
)

// InputEnv returns the environment variable the runner uses for input name.
func InputEnv(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// Input returns the trimmed value of the action input name, or "" when unset.
func Input(name string) string {
	return strings.TrimSpace(os.Getenv(InputEnv(name)))
}
