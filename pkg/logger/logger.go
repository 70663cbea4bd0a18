// Package logger builds the slog loggers the time-bank API runs on: a
// Cloud Run JSON handler for deployment, a discard handler for tests, and
// context plumbing so every request carries its own scoped logger.
package logger

import (
	"log/slog"
	"strings"
)

// New builds a logger at the named level using the given handler factory,
// e.g. New(cfg.LogLevel, NewCloudRunHandler).
func New(level string, handler func(level slog.Level) slog.Handler) *slog.Logger {
	h := handler(getSlogLevel(level))
	return slog.New(h)
}

// ---- Helpers ----
func getSlogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
