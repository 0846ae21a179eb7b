package app

import (
	"io"
	"log/slog"
)

// NewLogger returns a configured slog.Logger based on configuration. The
// terminal menu owns stdout, so callers normally pass stderr.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{AddSource: true, Level: slog.LevelWarn}
	if cfg != nil {
		if level, err := parseLevel(cfg.LogLevel); err == nil {
			opts.Level = level
		}
		if cfg.IsProduction() {
			opts.AddSource = false
		}
	}
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
