// Package log provides component-scoped structured logging over slog.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Logger tags every record with a component attribute.
type Logger struct {
	*slog.Logger
}

// New creates a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level, component string) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(h).With("component", component)}
}

// Default returns an info-level logger on stderr.
func Default(component string) *Logger {
	return New(os.Stderr, slog.LevelInfo, component)
}

// WithComponent returns a logger scoped to a sub-component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With("component", component)}
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError, "test")
}
