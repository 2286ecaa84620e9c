package logger

import (
	"log/slog"
	"os"
	"strings"
)

var log = newLogger()

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if strings.EqualFold(os.Getenv("APP_ENV"), "development") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}

// Debug messages are only emitted in development.
func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}
