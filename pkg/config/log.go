package config

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger that writes to w at level, with timestamps
// formatted as "HH:MM:SS.ms" (e.g. "14:32:01.45").
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Logger creates a logger at the configured level.
func (c Config) Logger(w io.Writer) *log.Logger {
	return NewLogger(w, c.Level())
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFromContext returns the logger stored by WithLogger, or a logger
// that discards everything.
func LoggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}
