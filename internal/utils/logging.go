// internal/utils/logging.go
package utils

import (
	"fmt"
	"io"
	"log/slog"
)

// SetupLogger ставит текстовый slog-логгер по умолчанию с заданным уровнем
// ("debug", "info", "warn", "error").
func SetupLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger, nil
}
