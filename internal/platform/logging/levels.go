package logging

import (
	"log/slog"
	"strings"
)

// ParseLevel converts an internal level name to a slog.Level. Valid values
// are "debug", "info", "warn", and "error"; unrecognized values default to
// info. Used at bootstrap to apply the configured log level.
func ParseLevel(level string) slog.Level {
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

// ParseMCPLevel maps an MCP protocol logging level name onto the internal
// level set. The protocol's eight severities collapse onto four: notice logs
// as info, and critical, alert, and emergency log as error. Reports false
// for unrecognized names so callers can leave their state untouched.
func ParseMCPLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "notice":
		return slog.LevelInfo, true
	case "warning":
		return slog.LevelWarn, true
	case "error", "critical", "alert", "emergency":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
