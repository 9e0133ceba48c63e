package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init installs the process-wide JSON logger. Call once from main before
// anything else logs.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	Log = slog.New(handler)
}
