// Package logging builds the per-run slog.Logger and passes it through
// context.Context so every pipeline stage logs through the same instance.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Options configures the run logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // optional log file; output is teed to console and file
}

// New creates a logger for one run. It does not touch the global default
// logger, so concurrent tests get isolated instances. When a log file is
// configured the returned closer flushes and closes it.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	switch opts.Level {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, nil, fmt.Errorf("unknown log level %q", opts.Level)
	}

	out := io.Writer(os.Stderr)
	var closer io.Closer
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", opts.File, err)
		}
		out = io.MultiWriter(os.Stderr, f)
		closer = f
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if opts.Format == "json" {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	return slog.New(handler), closer, nil
}

// key is an unexported type to prevent collisions with other context keys.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context carrying the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context, falling back to the
// default logger when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
