package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Colors used by the pretty handler.
var (
	slate  = lipgloss.Color("#667085")
	green  = lipgloss.Color("#16A34A")
	red    = lipgloss.Color("#D93025")
	yellow = lipgloss.Color("#F59E0B")
)

// Icons prefixed to warning and error lines.
const (
	iconWarning = "!"
	iconCross   = "✗"
)

// colorProfile returns Ascii when NO_COLOR is set or when stderr is neither a
// terminal nor a GitHub Actions log, which renders ANSI colors.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return termenv.ANSI256
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

func newOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(colorProfile()), termenv.WithTTY(true))
}
