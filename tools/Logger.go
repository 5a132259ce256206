package tools

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger installs a tint handler as the default slog logger
func InitLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}
