// Package logging builds the slog loggers used by the schedsim commands.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"cpu-scheduler-sim/config"
)

// Service is attached to every record so server and CLI output can be
// told apart when both write to the same sink.
const Service = "schedsim"

// FromConfig creates the logger described by the log section of c. Records
// go to stderr, which keeps stdout free for tables and generated workloads.
func FromConfig(c *config.SchedulerConfig) *slog.Logger {
	return FromConfigWithWriter(c, os.Stderr)
}

// FromConfigWithWriter is FromConfig writing to w.
func FromConfigWithWriter(c *config.SchedulerConfig, w io.Writer) *slog.Logger {
	def := config.DefaultSchedulerConfig()
	level, format := def.LogLevel, def.LogFormat
	if c != nil {
		if c.LogLevel != "" {
			level = c.LogLevel
		}
		if c.LogFormat != "" {
			format = c.LogFormat
		}
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", Service)
}

// ParseLevel converts a level name such as "debug" or "warn+2" to a
// slog.Level. "warning" is accepted for warn; anything unparseable is info.
func ParseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
