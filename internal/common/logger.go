package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gochat/internal/config"
)

// NewLogger builds the process logger from LoggingConfig and installs it as
// slog's default. The returned closer releases the output file, if any.
func NewLogger(cfg config.LoggingConfig) (*slog.Logger, func(), error) {
	var (
		out     io.Writer
		closeFn = func() {}
	)

	switch strings.ToLower(cfg.OutputPath) {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log output %s: %w", cfg.OutputPath, err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := slog.New(newHandler(out, cfg))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

func newHandler(out io.Writer, cfg config.LoggingConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
