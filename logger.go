package fixedarray

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the structured logger used for buffer lifecycle events.
// Records use the keys "count", "bytes" and "error".
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text at Info level to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, levelOpts(slog.LevelInfo))
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON records at or above level to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return newStderrLogger(slog.NewJSONHandler, level)
}

// NewTextLogger logs key=value records at or above level to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return newStderrLogger(slog.NewTextHandler, level)
}

// NoopLogger discards every record.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

func newStderrLogger[H slog.Handler](newHandler func(io.Writer, *slog.HandlerOptions) H, level slog.Level) *Logger {
	return NewLogger(newHandler(os.Stderr, levelOpts(level)))
}

func levelOpts(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: level}
}

// WithCount returns a logger that adds count to every record.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{Logger: l.With("count", count)}
}

// WithBytes returns a logger that adds bytes to every record.
func (l *Logger) WithBytes(bytes int64) *Logger {
	return &Logger{Logger: l.With("bytes", bytes)}
}

// LogAllocate records an allocation attempt: Debug on success, Warn on failure.
func (l *Logger) LogAllocate(count int, bytes int64, err error) {
	if err == nil {
		l.Debug("buffer allocated", "count", count, "bytes", bytes)
		return
	}
	l.Warn("buffer allocation failed", "count", count, "bytes", bytes, "error", err)
}

// LogRelease records a buffer being dropped.
func (l *Logger) LogRelease(count int, bytes int64) {
	l.Debug("buffer released", "count", count, "bytes", bytes)
}
