package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
)

// New returns a slog logger that renders through pterm, so log lines share the
// CLI's look.
func New(level string) *slog.Logger {
	return slog.New(NewPtermHandler(level, nil))
}

// NewPtermHandler builds a pterm-backed slog handler. A nil writer keeps
// pterm's default output.
func NewPtermHandler(level string, w io.Writer) slog.Handler {
	l := pterm.DefaultLogger.WithLevel(ptermLevel(level))
	if w != nil {
		l = l.WithWriter(w)
	}
	return pterm.NewSlogHandler(l)
}

// ---- Helpers ----

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

func ptermLevel(level string) pterm.LogLevel {
	switch ParseLevel(level) {
	case slog.LevelDebug:
		return pterm.LogLevelDebug
	case slog.LevelWarn:
		return pterm.LogLevelWarn
	case slog.LevelError:
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
