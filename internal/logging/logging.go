// Package logging provides the structured logger shared by the router,
// the remote backends and the fswalk command.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel represents different logging levels.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// ParseLevel converts "debug", "info", "warn" or "error" to a LogLevel.
// Unrecognized names map to LogLevelInfo.
func ParseLevel(name string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config holds configuration for a text logger.
type Config struct {
	// Level sets the minimum log level.
	Level LogLevel
	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer
	// JSON switches from the text handler to the JSON handler.
	JSON bool
}

// Logger wraps a *slog.Logger. The zero value and a nil *Logger discard
// everything.
type Logger struct {
	l *slog.Logger
}

// New creates a logger writing to cfg.Output.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.slogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	return &Logger{l: slog.New(h)}
}

// NewNop creates a logger that discards all messages.
func NewNop() *Logger {
	return &Logger{l: slog.New(slog.DiscardHandler)}
}

// FromSlog wraps an existing slog logger. A nil logger yields a no-op logger.
func FromSlog(l *slog.Logger) *Logger {
	if l == nil {
		return NewNop()
	}
	return &Logger{l: l}
}

func (l *Logger) slog() *slog.Logger {
	if l == nil || l.l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.l
}

// Debug logs debug-level messages.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.slog().DebugContext(ctx, msg, args...)
}

// Info logs info-level messages.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.slog().InfoContext(ctx, msg, args...)
}

// Warn logs warning-level messages.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.slog().WarnContext(ctx, msg, args...)
}

// Error logs error-level messages.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.slog().ErrorContext(ctx, msg, args...)
}

// With returns a logger with additional fields.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l: l.slog().With(args...)}
}

// WithMount returns a logger tagged with a virtual root name.
func (l *Logger) WithMount(name string) *Logger {
	return l.With("mount", name)
}

// WithPath returns a logger tagged with a path.
func (l *Logger) WithPath(path string) *Logger {
	return l.With("path", path)
}

// Slog returns the underlying slog logger.
func (l *Logger) Slog() *slog.Logger {
	return l.slog()
}
