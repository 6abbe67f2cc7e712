package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pathpiper/pathpiper-backend/internal/config"
)

// redactedKeys never reach the log output with their values.
var redactedKeys = map[string]struct{}{
	"authorization": {},
	"token":         {},
	"access_token":  {},
	"jwt_secret":    {},
}

// NewLogger builds the process logger on stderr and installs it as the
// slog default. Every record carries the service name and build version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(cfg, os.Stderr)).With(
		slog.String("service", "pathpiper-moderation"),
		slog.String("version", Version),
	)
	slog.SetDefault(logger)
	return logger
}

// newHandler picks JSON for "json" and text with source locations otherwise.
func newHandler(cfg config.LogConfig, w io.Writer) slog.Handler {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: redact,
	}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := redactedKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

// parseLevel accepts slog level names in any case. Unknown values mean info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
