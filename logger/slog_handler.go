package logger

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/philipp01105/logc/core"
)

// SlogHandler implements slog.Handler on top of a Logger, so code written
// against log/slog reaches the same console and sinks. Attributes are
// appended to the message as key=value text.
type SlogHandler struct {
	logger *Logger
	attrs  string // pre-rendered attributes from WithAttrs
	group  string // key prefix, e.g. "http.request."
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Logger.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled always reports true: each sink applies its own threshold.
func (s *SlogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle converts a slog.Record into an event and dispatches it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	// Records without a PC report core.UnknownFile and line 0.
	caller := core.CallerFromPC(record.PC)
	e := core.NewMessageEvent(slogLevelToCore(record.Level), caller.ShortFile, caller.Line, b.String())
	if !record.Time.IsZero() {
		t := record.Time
		e.Stamp(func() time.Time { return t })
	}
	s.logger.dispatch(&e)
	return nil
}

// WithAttrs returns a new handler whose records carry attrs.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &SlogHandler{logger: s.logger, attrs: b.String(), group: s.group}
}

// WithGroup returns a new handler that prefixes later keys with name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{logger: s.logger, attrs: s.attrs, group: s.group + name + "."}
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// slogLevelToCore maps slog levels onto the six logc levels
func slogLevelToCore(l slog.Level) core.Level {
	switch {
	case l < slog.LevelDebug:
		return core.TraceLevel
	case l < slog.LevelInfo:
		return core.DebugLevel
	case l < slog.LevelWarn:
		return core.InfoLevel
	case l < slog.LevelError:
		return core.WarnLevel
	case l < slog.LevelError+4:
		return core.ErrorLevel
	default:
		return core.FatalLevel
	}
}
