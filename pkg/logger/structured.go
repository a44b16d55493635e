package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog = zerolog.Nop()

// InitStructured initializes the global zerolog logger.
// Development gets a human readable console writer, everything else JSON.
func InitStructured(env string) {
	var w io.Writer
	if env == "development" || env == "dev" || env == "local" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "site-backend").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// SetLevel parses a level name ("debug", "info", ...). Unknown names keep the current level.
func SetLevel(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" {
		zlog = zlog.Level(lvl)
	}
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// WithAdmin returns a logger carrying the acting admin
func WithAdmin(adminID, account string) zerolog.Logger {
	return zlog.With().Str("admin_id", adminID).Str("account", account).Logger()
}

// Info logs a formatted message at info level
func Info(format string, args ...any) {
	zlog.Info().Msg(fmt.Sprintf(format, args...))
}

// Warn logs a formatted message at warn level
func Warn(format string, args ...any) {
	zlog.Warn().Msg(fmt.Sprintf(format, args...))
}

// Error logs a formatted message at error level
func Error(format string, args ...any) {
	zlog.Error().Msg(fmt.Sprintf(format, args...))
}

// Fatal logs a formatted message and exits
func Fatal(format string, args ...any) {
	zlog.Fatal().Msg(fmt.Sprintf(format, args...))
}
