package sink

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/logc/core"
	"github.com/philipp01105/logc/formatter"
)

// File writes file-formatted lines to a stream. A File created with
// NewFile borrows its writer; one created with OpenFile owns the file
// and closes it in Close.
type File struct {
	writer    io.Writer
	formatter formatter.Formatter
	file      *os.File // non-nil only when owned
	closed    chan struct{}
}

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Writer receives the lines (required)
	Writer io.Writer
	// Formatter to use (default: FileFormatter with build-tag defaults)
	Formatter formatter.Formatter
}

// NewFile creates a file sink on an existing stream. Close never closes
// that stream.
func NewFile(cfg FileConfig) *File {
	if cfg.Writer == nil {
		cfg.Writer = io.Discard
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewFileFormatter(formatter.DefaultConfig())
	}
	return &File{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		closed:    make(chan struct{}),
	}
}

// OpenFile opens path for appending, creating it if needed, and returns
// a sink that owns the file.
func OpenFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}
	s := NewFile(FileConfig{Writer: f})
	s.file = f
	return s, nil
}

// Handle writes one line and flushes the writer if it buffers
func (f *File) Handle(e *core.Event) error {
	return formatter.WriteTo(f.formatter, e, f.writer)
}

// Close flushes a buffering writer and, for an owned file, syncs and
// closes it. Further calls return nil.
func (f *File) Close() error {
	select {
	case <-f.closed:
		return nil // Already closed
	default:
		close(f.closed)
	}

	var err error
	if fl, ok := f.writer.(formatter.Flusher); ok {
		err = multierr.Append(err, fl.Flush())
	}
	if f.file != nil {
		err = multierr.Append(err, f.file.Sync())
		err = multierr.Append(err, f.file.Close())
	}
	return err
}
