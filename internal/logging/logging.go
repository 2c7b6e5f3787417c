// Package logging builds the zap loggers used across cubeclub.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ParseLevel converts a level name such as "debug" or "WARN".
func ParseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// New constructs a logger writing to stderr. stdout is left alone because
// the mcp command speaks its protocol there.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:    "message",
		TimeKey:       "timestamp",
		LevelKey:      "severity",
		NameKey:       "logger",
		CallerKey:     "caller",
		StacktraceKey: "stacktrace",
		EncodeTime:    zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "", FormatConsole:
		format = FormatConsole
		encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderCfg.CallerKey = ""
	case FormatJSON:
	default:
		return nil, fmt.Errorf("invalid log format %q: must be json or console", format)
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          format,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}
	return cfg.Build()
}

// PrintAdapter feeds print-style loggers, such as chi's request logger,
// into zap at info level.
type PrintAdapter struct {
	logger *zap.SugaredLogger
}

// NewPrintAdapter creates a PrintAdapter backed by logger.
func NewPrintAdapter(logger *zap.Logger) PrintAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return PrintAdapter{logger: logger.Sugar()}
}

func (a PrintAdapter) Print(v ...interface{}) {
	a.logger.Info(strings.TrimSpace(fmt.Sprint(v...)))
}

func (a PrintAdapter) Printf(format string, args ...interface{}) {
	a.logger.Infof(format, args...)
}
