package utils

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "info"

// NewApplicationLogger constructs a zap logger configured for human-readable console output.
// An empty or unrecognized level falls back to info.
func NewApplicationLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(ParseLogLevel(level))
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	return config.Build()
}

// ParseLogLevel maps a textual level onto a zap level.
func ParseLogLevel(level string) zapcore.Level {
	parsed, parseError := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if parseError != nil {
		return zapcore.InfoLevel
	}
	return parsed
}
