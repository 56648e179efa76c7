package logger

import (
	"log/slog"
	"os"
)

// New JSON-логгер; в dev-окружении включается debug-уровень
// и указание источника записи
func New(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if env == "dev" {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
