package logger

import (
	"log/slog"
	"os"
)

// Init initializes the default logger with an appropriate handler based on
// environment.
func Init(env string, debug bool) {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	var handler slog.Handler
	if debug || env == "development" {
		opts.Level = slog.LevelDebug
		// Human-readable output for development
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Structured JSON for production
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
