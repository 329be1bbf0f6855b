package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/logc/core"
)

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	sl := slog.New(NewSlogHandler(log))
	sl.Info("test message", "key", "value", "count", 42)

	output := buf.String()
	if !strings.Contains(output, "[INFO ][slog_handler_test.go:") {
		t.Errorf("Expected level and source in output, got: %s", output)
	}
	if !strings.Contains(output, "test message key=value count=42") {
		t.Errorf("Expected attributes in output, got: %s", output)
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	sl := slog.New(NewSlogHandler(log)).
		With("service", "api").
		WithGroup("http").
		With("method", "GET")
	sl.Warn("slow", slog.Group("timing", slog.Int("ms", 1200)), "status", 200)

	want := "slow service=api http.method=GET http.timing.ms=1200 http.status=200\n"
	if !strings.HasSuffix(buf.String(), want) {
		t.Errorf("output = %q, want suffix %q", buf.String(), want)
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.FatalLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := slogLevelToCore(tt.level); got != tt.want {
				t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_RecordTime(t *testing.T) {
	var file bytes.Buffer
	log := newTestLogger(&bytes.Buffer{})
	log.RegisterFile(&file, TraceLevel)

	h := NewSlogHandler(log)
	if !h.Enabled(context.Background(), slog.LevelDebug-8) {
		t.Error("Enabled() = false")
	}

	rec := slog.NewRecord(time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC), slog.LevelError, "from record", 0)
	if err := h.Handle(context.Background(), rec); err != nil {
		t.Fatal(err)
	}

	want := "[2001-02-03 04:05:06][ERROR]" + threadField() + "[???:0] from record\n"
	if file.String() != want {
		t.Errorf("file = %q, want %q", file.String(), want)
	}
}

func TestSlogHandler_EmptyMessage(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	slog.New(NewSlogHandler(log)).Info("")

	if strings.Contains(buf.String(), "(null)") {
		t.Errorf("empty record message logged a placeholder: %q", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "]: \n") {
		t.Errorf("output = %q, want empty message", buf.String())
	}
}

func TestSlogHandler_PercentIsLiteral(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)

	slog.New(NewSlogHandler(log)).Info("50%% done", "pct", "10%")

	if !strings.HasSuffix(buf.String(), ": 50%% done pct=10%\n") {
		t.Errorf("output = %q", buf.String())
	}
}
