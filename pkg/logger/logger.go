// Package logger builds the *slog.Logger used by the CLI and the sync
// service. Output is rendered by charmbracelet/log in text, JSON or logfmt.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Formats accepted by New.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// New creates a *slog.Logger writing to stderr.
// Level: "debug", "info", "warn", "error" (default: "info").
// Format: "text", "json" or "logfmt" (default: "text").
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter creates a *slog.Logger writing to w.
func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	return slog.New(NewHandler(w, level, format))
}

// NewHandler returns the charmbracelet logger as a slog.Handler.
func NewHandler(w io.Writer, level, format string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Formatter:       parseFormatter(format),
		ReportTimestamp: true,
	})
}

// ParseLevel converts a level string to a log.Level.
// Recognized values: "debug", "warn", "error". Everything else returns InfoLevel.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// SlogLevel is ParseLevel expressed as a slog.Level.
func SlogLevel(level string) slog.Level {
	switch ParseLevel(level) {
	case log.DebugLevel:
		return slog.LevelDebug
	case log.WarnLevel:
		return slog.LevelWarn
	case log.ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case FormatJSON:
		return log.JSONFormatter
	case FormatLogfmt:
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
