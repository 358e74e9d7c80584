// Package logger hides zap behind a small interface so packages can take a
// logger without caring how it was configured. Until Init is called the
// global logger discards everything.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
	Sync() error
}

type zapLogger struct {
	*zap.Logger
}

func (l *zapLogger) With(fields ...zap.Field) Logger {
	return &zapLogger{Logger: l.Logger.With(fields...)}
}

var globalLogger Logger = Nop()

// Init builds the process-wide logger. environment selects the zap preset,
// level the minimum level written.
func Init(environment, level string) error {
	var config zap.Config

	if environment == "development" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	config.Level = zap.NewAtomicLevelAt(parseLogLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.StacktraceKey = "stacktrace"

	logger, err := config.Build()
	if err != nil {
		return err
	}

	globalLogger = &zapLogger{Logger: logger}
	zap.ReplaceGlobals(logger)
	return nil
}

func Global() Logger {
	return globalLogger
}

// New wraps an existing zap logger.
func New(l *zap.Logger) Logger {
	return &zapLogger{Logger: l}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &zapLogger{Logger: zap.NewNop()}
}

func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
