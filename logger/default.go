package logger

import (
	"io"
	"sync"

	"github.com/philipp01105/logc/core"
	"github.com/philipp01105/logc/sink"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a stderr console sink
	defaultLogger = New()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log dispatches one message through the default logger
func Log(level core.Level, file string, line int, format string, args ...interface{}) {
	Default().Log(level, file, line, format, args...)
}

// SetLevel sets the console level of the default logger
func SetLevel(level core.Level) {
	Default().SetLevel(level)
}

// SetQuiet suppresses console output of the default logger
func SetQuiet(quiet bool) {
	Default().SetQuiet(quiet)
}

// SetLock installs the lock callback of the default logger
func SetLock(fn LockFunc, udata interface{}) {
	Default().SetLock(fn, udata)
}

// RegisterSink adds a sink to the default logger
func RegisterSink(s sink.Sink, min core.Level) (sink.Handle, error) {
	return Default().RegisterSink(s, min)
}

// RegisterFunc adds a callback sink to the default logger
func RegisterFunc(fn func(e *core.Event) error, data interface{}, min core.Level) (sink.Handle, error) {
	return Default().RegisterFunc(fn, data, min)
}

// RegisterFile adds a file-formatted sink on w to the default logger
func RegisterFile(w io.Writer, min core.Level) (sink.Handle, error) {
	return Default().RegisterFile(w, min)
}

// UnregisterLastSink removes the most recently filled slot of the default logger
func UnregisterLastSink() (sink.Handle, error) {
	return Default().UnregisterLastSink()
}

// RemoveSink removes a registration from the default logger
func RemoveSink(h sink.Handle) error {
	return Default().RemoveSink(h)
}

// MaxSinks returns the registry capacity of the default logger
func MaxSinks() int {
	return Default().MaxSinks()
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	Default().logf(core.TraceLevel, format, args)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().logf(core.DebugLevel, format, args)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().logf(core.InfoLevel, format, args)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().logf(core.WarnLevel, format, args)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().logf(core.ErrorLevel, format, args)
}

// Fatalf logs a formatted fatal message using the default logger
func Fatalf(format string, args ...interface{}) {
	Default().logf(core.FatalLevel, format, args)
}

// Trace logs a trace message using the default logger
func Trace(args ...interface{}) {
	Default().logs(core.TraceLevel, args)
}

// Debug logs a debug message using the default logger
func Debug(args ...interface{}) {
	Default().logs(core.DebugLevel, args)
}

// Info logs an info message using the default logger
func Info(args ...interface{}) {
	Default().logs(core.InfoLevel, args)
}

// Warn logs a warning message using the default logger
func Warn(args ...interface{}) {
	Default().logs(core.WarnLevel, args)
}

// Error logs an error message using the default logger
func Error(args ...interface{}) {
	Default().logs(core.ErrorLevel, args)
}

// Fatal logs a fatal message using the default logger
func Fatal(args ...interface{}) {
	Default().logs(core.FatalLevel, args)
}
