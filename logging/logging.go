// SPDX-License-Identifier: MIT

package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel is the environment variable consulted by LevelFromEnv.
const EnvLevel = "LOG_LEVEL"

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat indicates a log format other than text or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// ParseLevel converts a string to a slog.Level
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromEnv returns LOG_LEVEL, or "info" when it is unset.
func LevelFromEnv() string {
	if v := os.Getenv(EnvLevel); v != "" {
		return v
	}
	return "info"
}

// New returns a logger writing to w in the given format at the given level.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	switch strings.ToLower(format) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, ErrUnknownFormat
	}
}
