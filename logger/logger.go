package logger

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/philipp01105/logc/core"
	"github.com/philipp01105/logc/sink"
)

// Version is the release of the logging facility
const Version = "0.2.1"

// defaultCallerSkip reaches the user's frame from GetCaller through logf
// and one wrapper method.
const defaultCallerSkip = 3

// Logger holds the level threshold, quiet flag, lock callback, console
// sink and sink registry used by every dispatch. Settings take effect for
// subsequent calls and are safe to change while other goroutines log.
type Logger struct {
	level      atomic.Int32
	quiet      atomic.Bool
	lock       atomic.Pointer[lockState]
	console    sink.Sink
	sinks      *sink.Registry
	now        func() time.Time
	callerSkip int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	level      core.Level
	quiet      bool
	lockFn     LockFunc
	lockData   interface{}
	console    sink.Sink
	hasConsole bool
	maxSinks   int
	now        func() time.Time
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:    core.TraceLevel, // everything passes by default
		maxSinks: sink.DefaultCapacity,
		now:      time.Now,
	}
}

// WithLevel sets the minimum level of the console sink
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithQuiet starts the logger with console output suppressed
func (b *Builder) WithQuiet(quiet bool) *Builder {
	b.quiet = quiet
	return b
}

// WithLock sets the lock callback wrapped around every dispatch
func (b *Builder) WithLock(fn LockFunc, udata interface{}) *Builder {
	b.lockFn = fn
	b.lockData = udata
	return b
}

// WithConsole replaces the built-in console sink. A nil sink disables
// console output entirely.
func (b *Builder) WithConsole(s sink.Sink) *Builder {
	b.console = s
	b.hasConsole = true
	return b
}

// WithMaxSinks sets the registry capacity
func (b *Builder) WithMaxSinks(n int) *Builder {
	b.maxSinks = n
	return b
}

// WithClock sets the time source used to stamp events
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// WithCallerSkip adds frames to skip when resolving the caller, for
// wrappers around the level methods.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	console := b.console
	if !b.hasConsole {
		console = sink.NewConsole(sink.ConsoleConfig{})
	}

	l := &Logger{
		console:    console,
		sinks:      sink.NewRegistry(b.maxSinks),
		now:        b.now,
		callerSkip: defaultCallerSkip + b.callerSkip,
	}
	l.level.Store(int32(b.level))
	l.quiet.Store(b.quiet)
	l.SetLock(b.lockFn, b.lockData)
	return l
}

// New creates a Logger with default settings writing to stderr
func New() *Logger {
	return NewBuilder().Build()
}

// SetLevel sets the minimum level of the console sink
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Level returns the minimum level of the console sink
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetQuiet suppresses or restores console output. Registered sinks are
// not affected.
func (l *Logger) SetQuiet(quiet bool) {
	l.quiet.Store(quiet)
}

// Quiet reports whether console output is suppressed
func (l *Logger) Quiet() bool {
	return l.quiet.Load()
}

// RegisterSink adds s, which fires for events at or above min
func (l *Logger) RegisterSink(s sink.Sink, min core.Level) (sink.Handle, error) {
	return l.sinks.Register(s, min)
}

// RegisterFunc adds a callback; data is exposed as Event.Data while fn runs
func (l *Logger) RegisterFunc(fn func(e *core.Event) error, data interface{}, min core.Level) (sink.Handle, error) {
	return l.sinks.RegisterFunc(fn, data, min)
}

// RegisterFile adds a file-formatted sink writing to w. The logger never
// closes w.
func (l *Logger) RegisterFile(w io.Writer, min core.Level) (sink.Handle, error) {
	return l.sinks.Register(sink.NewFile(sink.FileConfig{Writer: w}), min)
}

// UnregisterLastSink removes the most recently filled slot
func (l *Logger) UnregisterLastSink() (sink.Handle, error) {
	return l.sinks.UnregisterLast()
}

// RemoveSink removes the registration identified by h
func (l *Logger) RemoveSink(h sink.Handle) error {
	return l.sinks.Remove(h)
}

// MaxSinks returns the registry capacity
func (l *Logger) MaxSinks() int {
	return l.sinks.Capacity()
}

// Log dispatches one message. file and line identify the call site.
// An empty format is logged as "(null)". Log never fails: sink errors are
// discarded.
func (l *Logger) Log(level core.Level, file string, line int, format string, args ...interface{}) {
	e := core.NewEvent(level, file, line, format, args)
	l.dispatch(&e)
}

// dispatch runs the console sink and the registry under the lock callback
func (l *Logger) dispatch(e *core.Event) {
	if ls := l.lock.Load(); ls != nil {
		ls.fn(true, ls.udata)
		defer ls.fn(false, ls.udata)
	}

	if l.console != nil && !l.quiet.Load() && e.Level >= l.Level() {
		e.Stamp(l.now)
		_ = l.console.Handle(e)
	}

	l.sinks.Dispatch(e, l.now)
}

// logf is the internal logging method used by the level wrappers
func (l *Logger) logf(level core.Level, format string, args []interface{}) {
	caller := core.GetCaller(l.callerSkip)
	e := core.NewEvent(level, caller.ShortFile, caller.Line, format, args)
	l.dispatch(&e)
}

// logs logs the fmt.Sprint rendering of args without format expansion
func (l *Logger) logs(level core.Level, args []interface{}) {
	caller := core.GetCaller(l.callerSkip)
	e := core.NewMessageEvent(level, caller.ShortFile, caller.Line, fmt.Sprint(args...))
	l.dispatch(&e)
}

// Tracef logs a formatted trace message
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(core.TraceLevel, format, args)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(core.DebugLevel, format, args)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(core.InfoLevel, format, args)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(core.WarnLevel, format, args)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(core.ErrorLevel, format, args)
}

// Fatalf logs a formatted fatal message. It does not exit.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logf(core.FatalLevel, format, args)
}

// Trace logs a trace message
func (l *Logger) Trace(args ...interface{}) {
	l.logs(core.TraceLevel, args)
}

// Debug logs a debug message
func (l *Logger) Debug(args ...interface{}) {
	l.logs(core.DebugLevel, args)
}

// Info logs an info message
func (l *Logger) Info(args ...interface{}) {
	l.logs(core.InfoLevel, args)
}

// Warn logs a warning message
func (l *Logger) Warn(args ...interface{}) {
	l.logs(core.WarnLevel, args)
}

// Error logs an error message
func (l *Logger) Error(args ...interface{}) {
	l.logs(core.ErrorLevel, args)
}

// Fatal logs a fatal message. It does not exit.
func (l *Logger) Fatal(args ...interface{}) {
	l.logs(core.FatalLevel, args)
}
