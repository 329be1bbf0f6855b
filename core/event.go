package core

import (
	"fmt"
	"time"

	"github.com/petermattis/goid"
)

// NullFormat replaces a missing format template.
const NullFormat = "(null)"

// Event describes one log call while it is being dispatched.
// Sinks must not retain an Event after Handle returns.
type Event struct {
	Level  Level
	File   string
	Line   int
	Time   time.Time
	Thread int64
	Format string
	Args   []interface{}

	// Message is Format rendered with Args. It is empty until Render runs.
	Message string

	// Data is the opaque context bound to the sink currently being called.
	Data interface{}

	stamped  bool
	rendered bool
}

// NewEvent builds an event for a single call. An empty format is
// replaced with NullFormat and its arguments are dropped.
func NewEvent(level Level, file string, line int, format string, args []interface{}) Event {
	if format == "" {
		format = NullFormat
		args = nil
	}
	return Event{
		Level:  level,
		File:   file,
		Line:   line,
		Format: format,
		Args:   args,
	}
}

// NewMessageEvent builds an event whose message is already rendered.
// msg is never expanded as a template and an empty msg stays empty.
func NewMessageEvent(level Level, file string, line int, msg string) Event {
	return Event{
		Level:    level,
		File:     file,
		Line:     line,
		Format:   msg,
		Message:  msg,
		rendered: true,
	}
}

// Stamp captures the wall-clock time and the calling goroutine once.
// Later calls are no-ops so every sink sees the same values.
func (e *Event) Stamp(now func() time.Time) {
	if e.stamped {
		return
	}
	if now == nil {
		now = time.Now
	}
	e.Time = now()
	e.Thread = goid.Get()
	e.stamped = true
}

// Stamped reports whether Stamp has run.
func (e *Event) Stamped() bool {
	return e.stamped
}

// Render formats the message once and caches it in Message.
func (e *Event) Render() string {
	if e.rendered {
		return e.Message
	}
	e.Message = fmt.Sprintf(e.Format, e.Args...)
	e.rendered = true
	return e.Message
}
