package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel overrides the -log-level flag when set.
const EnvLogLevel = "LIBNMEA_LOG_LEVEL"

// parseLevel maps a level name to an slog level. The second result is false
// for empty or unrecognized input.
func parseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// resolveLevel picks the level from the environment, then the flag value.
func resolveLevel(flagValue string) slog.Level {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		return lvl
	}
	lvl, _ := parseLevel(flagValue)
	return lvl
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
