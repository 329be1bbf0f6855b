// Package logger is the public API of logc. Most users only need to
// import this package.
//
// A Logger writes every message to its console sink (stderr by default)
// when the message reaches the logger's level and quiet is off, and to
// every registered sink whose own minimum level the message reaches.
// Everything happens synchronously on the calling goroutine.
//
// The package initializes a default Logger in init(). The package-level
// functions Infof, Errorf, SetLevel, RegisterFile, etc. delegate to this
// default instance, so simple programs can log without any setup:
//
//	logger.Infof("listening on %s", addr)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithLevel(logger.InfoLevel).
//	    WithMaxSinks(8).
//	    Build()
//	log.RegisterFile(f, logger.WarnLevel)
//
// Concurrent logging without a lock callback is memory-safe but lines
// from different goroutines may interleave. Install one to serialize
// whole dispatches:
//
//	var mu sync.Mutex
//	log.SetLock(logger.LockerFunc(&mu), nil)
//
// Fatal and Fatalf log at FATAL and return; they never exit.
package logger
