package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/sanmei-api/internal/config"
)

// ParseLevel maps a configured level name (case-insensitive) to a slog level.
// The second result is false for unknown names, which map to info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger on stdout
// with the configured level and sets it as the default logger.
//
// An unknown level falls back to info and a warning is written to stderr.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	logger := New(os.Stdout, os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger, nil
}

// New builds a JSON logger writing to out. Warnings about the configuration
// itself go to warn as plain text, since the JSON logger does not exist yet.
func New(out, warn io.Writer, levelName string) *slog.Logger {
	level, ok := ParseLevel(levelName)
	if !ok && warn != nil {
		slog.New(slog.NewTextHandler(warn, nil)).Warn(
			"invalid log level configured, using default level",
			"configured_level", levelName,
			"default_level", "info")
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
