package sink

import (
	"io"

	"github.com/mattn/go-colorable"

	"github.com/philipp01105/logc/core"
	"github.com/philipp01105/logc/formatter"
)

// Console writes console-formatted lines, by default to stderr
type Console struct {
	writer    io.Writer
	formatter formatter.Formatter
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: stderr, with ANSI translation on Windows)
	Writer io.Writer
	// Formatter to use (default: ConsoleFormatter with build-tag defaults)
	Formatter formatter.Formatter
}

// NewConsole creates a new console sink
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = colorable.NewColorableStderr()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewConsoleFormatter(formatter.DefaultConfig())
	}
	return &Console{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}
}

// Handle writes one line and flushes the writer if it buffers
func (c *Console) Handle(e *core.Event) error {
	return formatter.WriteTo(c.formatter, e, c.writer)
}
