// Package logging configures colored structured logging for the khc command
// line, on top of log/slog.
//
// The level comes from the KHATA_LOG env var (debug, info, warn, error);
// the default is info.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the tint handler as the slog default, at the level given by
// the KHATA_LOG env var.
func Setup() {
	SetupWithLevel(levelFromEnv())
}

// SetupWithLevel installs the tint handler at an explicit level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("KHATA_LOG")) {
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
