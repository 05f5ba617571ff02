package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "STEPPER_LOG_LEVEL"

// LogFileEnvVar names a file to append log output to.
const LogFileEnvVar = "STEPPER_LOG_FILE"

// Initialize creates the global logger.
//
// An empty level falls back to STEPPER_LOG_LEVEL; if that is empty too,
// logging is silent. An empty path falls back to STEPPER_LOG_FILE, then
// stderr. Interactive programs should log to a file: anything written to
// the terminal while Bubble Tea owns it corrupts the screen.
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}
	if path == "" {
		path = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if path == "stderr" || path == "stdout" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built
	return nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Explicitly set to something unknown
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger, silent if Initialize was never called.
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message with optional fields
func Info(msg string, fields ...zap.Field) { GetLogger().Info(msg, fields...) }

// Debug logs a debug message with optional fields
func Debug(msg string, fields ...zap.Field) { GetLogger().Debug(msg, fields...) }

// Warn logs a warning message with optional fields
func Warn(msg string, fields ...zap.Field) { GetLogger().Warn(msg, fields...) }

// Error logs an error message with optional fields
func Error(msg string, fields ...zap.Field) { GetLogger().Error(msg, fields...) }

// LogCommit logs a change to the bound value. source names what caused it:
// "edit", "autocorrect", "tap" or "repeat".
func LogCommit(source string, prev, next int) {
	Info("Value committed",
		zap.String("source", source),
		zap.Int("old", prev),
		zap.Int("new", next),
	)
}

// LogRejected logs a draft that failed validation.
func LogRejected(input, kind string, confirmed bool, candidate int) {
	Info("Draft rejected",
		zap.String("input", input),
		zap.String("kind", kind),
		zap.Bool("confirmed", confirmed),
		zap.Int("candidate", candidate),
	)
}

// LogRepeat logs a long-press repeat starting or stopping.
func LogRepeat(button, event string, value int) {
	Debug("Repeat "+event,
		zap.String("button", button),
		zap.Int("value", value),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
