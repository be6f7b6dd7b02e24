package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/buildgate/internal/ui/output"
	"go.trai.ch/buildgate/internal/ui/style"
)

// Attribute keys that describe a build abort. The pretty handler renders them
// on their own lines below the message instead of inline.
const (
	AttrReason = "reason"
	AttrFields = "fields"
)

// PrettyHandler is a slog.Handler for terminal output.
// Records print as one colored line per message line, inline key=value attributes,
// and indented abort details.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
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
	icon, color := h.decoration(r.Level)

	var inline, details []string
	collect := func(attr slog.Attr) bool {
		if isDetail(attr.Key) {
			details = append(details, "  "+attr.Key+": "+formatValue(attr.Value))
			return true
		}
		inline = append(inline, formatAttr(h.group, attr))
		return true
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(collect)

	lines := strings.Split(r.Message, "\n")
	if icon != "" {
		lines[0] = icon + " " + lines[0]
	}
	if len(inline) > 0 {
		lines[0] += " " + strings.Join(inline, " ")
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(h.paint(line, color))
		b.WriteByte('\n')
	}
	for _, line := range details {
		b.WriteString(h.paint(line, h.out.Color(string(style.Slate))))
		b.WriteByte('\n')
	}

	_, err := h.out.WriteString(b.String())
	return err
}

func (h *PrettyHandler) decoration(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, h.out.Color(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, h.out.Color(string(style.Yellow))
	default:
		return "", h.out.Color(string(style.Slate))
	}
}

func (h *PrettyHandler) paint(line string, color termenv.Color) string {
	if line == "" {
		return ""
	}
	return h.out.String(line).Foreground(color).String()
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)

	c := *h
	c.attrs = newAttrs
	return &c
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.group = name
	return &c
}

func isDetail(key string) bool {
	return key == AttrReason || key == AttrFields
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + formatValue(attr.Value)
}

// formatValue joins string lists with commas; other values use their slog rendering.
func formatValue(v slog.Value) string {
	if v.Kind() == slog.KindAny {
		if list, ok := v.Any().([]string); ok {
			return strings.Join(list, ", ")
		}
	}
	return v.String()
}
