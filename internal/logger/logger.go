// Package logger configures the process-wide slog logger: JSON output at
// info level in production, human-readable text at debug level elsewhere.
package logger

import (
	"log/slog"
	"os"
)

// New returns a logger configured for the given environment with the
// service name attached to every record.
func New(environment, service string) *slog.Logger {
	var handler slog.Handler
	switch environment {
	case "production", "staging":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler).With(slog.String("service", service))
}
