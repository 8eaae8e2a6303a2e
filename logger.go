package partstat

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with partstat-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDataset adds a dataset identity field to the logger.
func (l *Logger) WithDataset(id int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", id),
	}
}

// LogStats logs a stats request.
func (l *Logger) LogStats(ctx context.Context, id int64, partitions int, cached bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "stats request failed",
			"dataset", id,
			"partitions", partitions,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "stats request completed",
			"dataset", id,
			"partitions", partitions,
			"cached", cached,
		)
	}
}

// LogDecompose logs a union decomposition.
func (l *Logger) LogDecompose(ctx context.Context, parent int64, children, seeded int) {
	l.DebugContext(ctx, "union decomposition completed",
		"dataset", parent,
		"children", children,
		"seeded", seeded,
	)
}

// LogDecomposeSkipped logs a decomposition rejected by the partition-count
// invariant.
func (l *Logger) LogDecomposeSkipped(ctx context.Context, parent int64, childPartitions, parentPartitions int) {
	l.WarnContext(ctx, "union decomposition skipped: child partition counts do not sum to parent",
		"dataset", parent,
		"child_partitions", childPartitions,
		"parent_partitions", parentPartitions,
	)
}

// LogInvalidate logs a cache invalidation.
func (l *Logger) LogInvalidate(ctx context.Context, id int64, present bool) {
	l.DebugContext(ctx, "stats cache invalidated",
		"dataset", id,
		"present", present,
	)
}
