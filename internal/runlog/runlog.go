// Package runlog configures the structured logger shared by every
// cmd/hrscreen subsystem, using log/slog the way the reference corpus
// configures its own run loggers.
package runlog

import (
	"io"
	"log/slog"
	"os"
)

// New builds a JSON slog.Logger at the given level, writing to w (os.Stderr
// when w is nil). Accepted levels: "debug", "info", "warn", "error".
func New(level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
