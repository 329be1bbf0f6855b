package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/logc/core"
)

const (
	// ConsoleTimeFormat is the timestamp layout of console lines
	ConsoleTimeFormat = "15:04:05"
	// FileTimeFormat is the timestamp layout of file and custom sink lines
	FileTimeFormat = "2006-01-02 15:04:05"
)

// level names padded to the widest name so columns line up
var levelBrackets = [...]string{
	core.TraceLevel: "[TRACE]",
	core.DebugLevel: "[DEBUG]",
	core.InfoLevel:  "[INFO ]",
	core.WarnLevel:  "[WARN ]",
	core.ErrorLevel: "[ERROR]",
	core.FatalLevel: "[FATAL]",
}

// ConsoleFormatter produces lines of the form
//
//	[15:04:05][INFO ][main.go:12]: message
type ConsoleFormatter struct {
	Config
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(cfg Config) *ConsoleFormatter {
	return &ConsoleFormatter{Config: cfg}
}

// FormatEvent formats a console line. With Color set the prefix up to and
// including the colon is wrapped in the level color.
func (f *ConsoleFormatter) FormatEvent(e *core.Event, buf *bytes.Buffer) {
	writePrefix(buf, e, ConsoleTimeFormat, f.Threads)
	buf.WriteByte(':')
	if f.Color {
		prefix := buf.String()
		buf.Reset()
		buf.WriteString(e.Level.Color().Sprint(prefix))
	}
	buf.WriteByte(' ')
	buf.WriteString(e.Render())
	buf.WriteByte('\n')
}

// FileFormatter produces lines of the form
//
//	[2006-01-02 15:04:05][INFO ][main.go:12] message
type FileFormatter struct {
	Config
}

// NewFileFormatter creates a new file formatter. Color is ignored.
func NewFileFormatter(cfg Config) *FileFormatter {
	cfg.Color = false
	return &FileFormatter{Config: cfg}
}

// FormatEvent formats a file line
func (f *FileFormatter) FormatEvent(e *core.Event, buf *bytes.Buffer) {
	writePrefix(buf, e, FileTimeFormat, f.Threads)
	buf.WriteByte(' ')
	buf.WriteString(e.Render())
	buf.WriteByte('\n')
}

func writePrefix(buf *bytes.Buffer, e *core.Event, layout string, threads bool) {
	buf.WriteByte('[')
	buf.Write(e.Time.AppendFormat(buf.AvailableBuffer(), layout))
	buf.WriteByte(']')

	if e.Level.Valid() {
		buf.WriteString(levelBrackets[e.Level])
	} else {
		buf.WriteString("[UNKNOWN]")
	}

	if threads {
		buf.WriteByte('[')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), e.Thread, 10))
		buf.WriteByte(']')
	}

	buf.WriteByte('[')
	buf.WriteString(e.File)
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(e.Line), 10))
	buf.WriteByte(']')
}
