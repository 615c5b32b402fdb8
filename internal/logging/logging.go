package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger creates a structured logger for the environment. Production
// writes JSON at info level; anything else writes text, at debug level when
// verbose is set.
func NewLogger(env string, verbose bool) *slog.Logger {
	return newLogger(os.Stderr, env, verbose)
}

func newLogger(w io.Writer, env string, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
