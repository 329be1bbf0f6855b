package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logc/core"
)

// Zap forwards events into a zap core, so an application that already
// runs a zap pipeline can receive logc output there.
type Zap struct {
	core zapcore.Core
}

// NewZap creates a sink writing to c
func NewZap(c zapcore.Core) *Zap {
	return &Zap{core: c}
}

// NewZapLogger creates a sink writing to l's core. Options on l such as
// hooks or Fatal exit behavior are not applied.
func NewZapLogger(l *zap.Logger) *Zap {
	return NewZap(l.Core())
}

// ZapLevel maps a logc level to the closest zap level. TRACE has no zap
// counterpart and is reported as debug.
func ZapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Handle writes e through the core. FATAL events are written, never
// acted upon: the process keeps running.
func (z *Zap) Handle(e *core.Event) error {
	ent := zapcore.Entry{
		Level:   ZapLevel(e.Level),
		Time:    e.Time,
		Message: e.Render(),
		Caller: zapcore.EntryCaller{
			Defined: true,
			File:    e.File,
			Line:    e.Line,
		},
	}
	if ce := z.core.Check(ent, nil); ce != nil {
		ce.Write(zap.Int64("thread", e.Thread))
	}
	return nil
}

// Sync flushes the underlying core
func (z *Zap) Sync() error {
	return z.core.Sync()
}
