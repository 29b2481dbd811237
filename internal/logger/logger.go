package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a timestamped zerolog logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole writes human-readable output to stderr.
func NewConsole(level zerolog.Level) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}, level)
}

// Component tags every event with the subsystem that produced it.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// ParseLevel accepts zerolog level names plus "warning"; unknown values fall back to info.
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
