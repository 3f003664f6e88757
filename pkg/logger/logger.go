package logger

import (
	"io"
	"os"

	charm "github.com/charmbracelet/log"
)

// Config holds logger configuration
type Config struct {
	Level  string
	Format string // "text" (default) or "json"
	Output io.Writer
}

// Logger is a leveled key/value logger. It is a thin wrapper around
// charmbracelet/log so callers only depend on this package.
type Logger struct {
	l *charm.Logger
}

// New creates a new logger. Unknown levels fall back to info.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	level, err := charm.ParseLevel(cfg.Level)
	if err != nil {
		level = charm.InfoLevel
	}

	opts := charm.Options{
		Level:           level,
		ReportTimestamp: true,
	}
	if cfg.Format == "json" {
		opts.Formatter = charm.JSONFormatter
	}

	return &Logger{l: charm.NewWithOptions(output, opts)}
}

// WithComponent creates a child logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{l: l.l.With("component", component)}
}

// Debug logs a debug message with optional key/value pairs.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.l.Debug(msg, keyvals...)
}

// Info logs an info message with optional key/value pairs.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.l.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key/value pairs.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.l.Warn(msg, keyvals...)
}

// Error logs an error message with optional key/value pairs.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.l.Error(msg, keyvals...)
}
