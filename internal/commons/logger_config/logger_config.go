package logger_config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide structured logger. Safe for concurrent use.
var Logger *slog.Logger

func init() {
	opts := &slog.HandlerOptions{
		Level:     levelFromEnv(),
		AddSource: true,
	}

	Logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(Logger)
}

// levelFromEnv reads LOG_LEVEL (debug|info|warn|error); unset means info.
func levelFromEnv() slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Printf-style sugar for places where structured attrs are overkill.
func Debugf(format string, args ...any) { Logger.Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { Logger.Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { Logger.Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { Logger.Error(fmt.Sprintf(format, args...)) }
