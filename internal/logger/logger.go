package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// ParseLevel maps a config level name to a zap level. ok is false for unknown names.
func ParseLevel(levelStr string) (zapcore.Level, bool) {
	switch levelStr {
	case "debug":
		return zapcore.DebugLevel, true
	case "", "info":
		return zapcore.InfoLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	}
	return zapcore.InfoLevel, false
}

// New builds a console logger, or a JSON one when format is "json".
func New(levelStr, format string) (*zap.Logger, error) {
	level, _ := ParseLevel(levelStr)

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// NewTest returns a logger that writes through t.
func NewTest(t testing.TB) *zap.Logger {
	return zaptest.NewLogger(t)
}

func NewNop() *zap.Logger {
	return zap.NewNop()
}
