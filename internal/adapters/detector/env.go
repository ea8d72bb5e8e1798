// Package detector provides environment detection for output mode selection.
package detector

import "os"

// OutputMode represents where step outputs are written.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeActions writes outputs with the GitHub Actions runner protocol.
	ModeActions
	// ModePlain writes outputs as name=value lines on stdout.
	ModePlain
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeActions:
		return "actions"
	case ModePlain:
		return "plain"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode based on the environment.
// The runner always exports GITHUB_ACTIONS=true.
func DetectEnvironment() OutputMode {
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return ModeActions
	}
	return ModePlain
}

// ResolveMode applies user override flag to auto-detection.
// userFlag should be one of: "auto", "actions", "github", "plain", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "actions", "github":
		return ModeActions
	case "plain":
		return ModePlain
	default:
		return autoDetected
	}
}
