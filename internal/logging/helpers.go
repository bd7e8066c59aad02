package logging

import "log/slog"

// Debug logs at debug level when a logger is configured.
func Debug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs msg with the error under the "error" key. Nil loggers are ignored.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}

// WithDocument scopes logger to a poll's date key and, when known, its game id.
func WithDocument(logger *slog.Logger, dateKey, gameID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	args := []any{FieldDateKey, dateKey}
	if gameID != "" {
		args = append(args, FieldGameID, gameID)
	}
	return logger.With(args...)
}
