// Package log provides structured logging for suivm.
//
// A Logger interface backed by Go's stdlib slog keeps subsystems testable:
// components take a Logger via options and fall back to the global default.
//
// Output semantics:
//   - User output (stdout): command results, progress, install guidance
//   - Diagnostic logging (stderr): Debug, Info, Warn, Error messages
//
// Verbosity:
//   - ERROR (--quiet): errors only
//   - WARN (default): warnings and user output
//   - DEBUG (--verbose): catalog requests, asset selection, filesystem steps
package log

import (
	"log/slog"
	"sync"
)

// Logger is the interface for structured logging. Methods match slog's
// signature for easy integration.
type Logger interface {
	// Debug logs internal detail: catalog responses, selected assets,
	// download destinations.
	Debug(msg string, args ...any)

	// Info logs operational context like "downloading asset".
	Info(msg string, args ...any)

	// Warn logs recoverable issues.
	Warn(msg string, args ...any)

	// Error logs failures that prevent an operation from completing.
	Error(msg string, args ...any)

	// With returns a Logger that includes the given key-value pairs in
	// all subsequent entries.
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New creates a Logger backed by slog with the given handler.
func New(h slog.Handler) Logger {
	return &slogLogger{l: slog.New(h)}
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

// noopLogger discards all log output.
type noopLogger struct{}

// NewNoop returns a logger that discards all output.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) With(...any) Logger   { return noopLogger{} }

var (
	defaultLogger Logger = noopLogger{}
	defaultMu     sync.RWMutex
)

// Default returns the global logger configured at startup. Returns a noop
// logger if SetDefault has not been called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the global logger. Called once in main() after parsing
// verbosity flags.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
