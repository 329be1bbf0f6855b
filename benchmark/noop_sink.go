package benchmark

import (
	"log/slog"

	"github.com/philipp01105/logc/core"
	"github.com/philipp01105/logc/logger"
	"github.com/philipp01105/logc/sink"
)

type noopSink struct{}

func newNoopSink() sink.Sink {
	return noopSink{}
}

// Handle renders the message so the cost of formatting is still measured
func (noopSink) Handle(e *core.Event) error {
	_ = len(e.Render())
	return nil
}

func newSlogOn(l *logger.Logger) *slog.Logger {
	return slog.New(logger.NewSlogHandler(l))
}
