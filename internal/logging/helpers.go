package logging

import (
	"context"
	"log/slog"
)

// Info logs at info level. A nil logger drops the record.
func Info(logger *slog.Logger, msg string, args ...any) {
	logAt(logger, slog.LevelInfo, msg, args)
}

// Warn logs at warn level. A nil logger drops the record.
func Warn(logger *slog.Logger, msg string, args ...any) {
	logAt(logger, slog.LevelWarn, msg, args)
}

// Error logs at error level, appending err under FieldError when present.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, FieldError, err)
	}
	logAt(logger, slog.LevelError, msg, args)
}

func logAt(logger *slog.Logger, level slog.Level, msg string, args []any) {
	if logger == nil {
		return
	}
	logger.Log(context.Background(), level, msg, args...)
}
