// Package logging builds the structured logger shared by the parser, the
// HTTP client and the benchmark runner.
package logging

import (
	"io"
	"log/slog"
)

// New creates a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LevelForVerbosity maps a -v count to a level: none logs warnings, one
// adds info and two or more add debug.
func LevelForVerbosity(count int) slog.Level {
	switch {
	case count <= 0:
		return slog.LevelWarn
	case count == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
