package logger

import (
	"github.com/philipp01105/logc/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
)

// LevelName returns the canonical uppercase name of a level
func LevelName(l Level) string {
	return core.LevelName(l)
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
