package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/cacheprobe/internal/core/domain"
)

// PrettyHandler is a slog.Handler writing one colored line per record.
// Probe results are colored by outcome; warnings and errors carry an icon.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// attrs holds the rendered handler attributes, each with a leading space.
	attrs string
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   newOutput(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := decorate(r.Level, r.Message)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&b, h.group, attr)
		return true
	})

	styled := h.out.String(b.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, attr := range attrs {
		appendAttr(&b, h.group, attr)
	}

	next := *h
	next.attrs = b.String()
	return &next
}

// WithGroup returns a new Handler qualifying later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := *h
	next.group = qualify(h.group, name)
	return &next
}

// decorate picks the icon and color of a line.
func decorate(level slog.Level, msg string) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return iconCross, red
	case level >= slog.LevelWarn:
		return iconWarning, yellow
	case strings.HasPrefix(msg, domain.AvailablePrefix):
		return "", green
	case strings.HasPrefix(msg, domain.MissingPrefix):
		return "", yellow
	default:
		return "", slate
	}
}

// appendAttr renders attr as " key=value", flattening groups into dotted keys.
func appendAttr(b *strings.Builder, group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		inner := group
		if attr.Key != "" {
			inner = qualify(group, attr.Key)
		}
		for _, a := range attr.Value.Group() {
			appendAttr(b, inner, a)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(qualify(group, attr.Key))
	b.WriteByte('=')
	b.WriteString(attr.Value.String())
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
