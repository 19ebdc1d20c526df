package infra

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger builds the application logger from the configured level.
func NewLogger(cfg *Config) *slog.Logger {
	return newLogger(os.Stderr, cfg)
}

func newLogger(w io.Writer, cfg *Config) *slog.Logger {
	level, err := ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", cfg.App.Name))
}
