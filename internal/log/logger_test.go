package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(h)

	logger.Info("fetching catalog", "repo", "MystenLabs/sui")

	output := buf.String()
	if !strings.Contains(output, "fetching catalog") {
		t.Errorf("expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "repo=MystenLabs/sui") {
		t.Errorf("expected output to contain attribute, got: %s", output)
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger)
		contains string
	}{
		{"Debug", func(l Logger) { l.Debug("debug msg") }, "debug msg"},
		{"Info", func(l Logger) { l.Info("info msg") }, "info msg"},
		{"Warn", func(l Logger) { l.Warn("warn msg") }, "warn msg"},
		{"Error", func(l Logger) { l.Error("error msg") }, "error msg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			tt.logFunc(New(h))
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("expected %q in output, got: %s", tt.contains, buf.String())
			}
		})
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(h).With("version", "v1.2.0")

	logger.Info("installing")

	if !strings.Contains(buf.String(), "version=v1.2.0") {
		t.Errorf("expected bound attribute in output, got: %s", buf.String())
	}
}

func TestDefaultIsNoopUntilSet(t *testing.T) {
	// Must not panic and must be silent.
	Default().Info("goes nowhere")

	var buf bytes.Buffer
	SetDefault(New(slog.NewTextHandler(&buf, nil)))
	defer SetDefault(NewNoop())

	Default().Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected default logger output, got: %s", buf.String())
	}
}
