package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tarsojabbes/science/internal/config"
)

// NewLogger builds the process logger from cfg and installs it as the slog
// default. Output goes to stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger writes JSON unless cfg asks for text, which also records the
// call site. Unknown levels fall back to info.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		opts.AddSource = true
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", "science"))
}
