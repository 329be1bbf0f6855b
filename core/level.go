package core

import (
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Level represents the severity level of a log event
type Level int8

const (
	// TraceLevel for very fine-grained diagnostics (default minimum)
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages. Logging at this level does not exit.
	FatalLevel
)

var levelNames = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
}

// levelColors are force-enabled so that whether a line is colored is
// decided by the formatter, not by terminal detection.
var levelColors = [...]*color.Color{
	TraceLevel: forced(color.FgHiBlue),
	DebugLevel: forced(color.FgCyan),
	InfoLevel:  forced(color.FgGreen),
	WarnLevel:  forced(color.FgYellow),
	ErrorLevel: forced(color.FgRed),
	FatalLevel: forced(color.FgMagenta),
}

func forced(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

// String returns the canonical uppercase name of the level
func (l Level) String() string {
	if !l.Valid() {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the defined levels
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// Color returns the terminal color used for the level's console prefix.
// Out-of-range levels get an uncolored attribute set.
func (l Level) Color() *color.Color {
	if !l.Valid() {
		return forced(color.Reset)
	}
	return levelColors[l]
}

// LevelName returns the canonical uppercase name for a level
func LevelName(l Level) string {
	return l.String()
}

// AllLevels returns every level in ascending severity order
func AllLevels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and WARNING is accepted as an alias for WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	default:
		return TraceLevel, errors.Errorf("unknown log level %q", s)
	}
}
