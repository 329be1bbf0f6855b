package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/logc/core"
)

// Formatter renders a single event as one line of output
type Formatter interface {
	// FormatEvent formats an event into the given buffer, including the
	// trailing newline.
	FormatEvent(e *core.Event, buf *bytes.Buffer)
}

// Flusher is implemented by writers that buffer internally, such as
// *bufio.Writer. WriteTo flushes them after every line.
type Flusher interface {
	Flush() error
}

// Config holds common formatter configuration
type Config struct {
	// Color wraps the bracketed prefix in the level's ANSI color
	Color bool
	// Threads adds the goroutine id after the level
	Threads bool
}

// DefaultConfig returns the configuration selected by build tags.
func DefaultConfig() Config {
	return Config{
		Color:   core.ColorEnabled,
		Threads: core.ThreadNames,
	}
}

// WriteTo formats e into a pooled buffer and hands it to w with a single
// Write call, then flushes w if it buffers.
func WriteTo(f Formatter, e *core.Event, w io.Writer) error {
	buf := getBuffer()
	f.FormatEvent(e, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	if err != nil {
		return err
	}
	if fl, ok := w.(Flusher); ok {
		return fl.Flush()
	}
	return nil
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
