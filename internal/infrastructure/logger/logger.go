package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MustInitLogger builds the service logger and installs it as the zap
// global, so packages log through zap.L without threading a handle.
func MustInitLogger(serviceName, logLevel string) *zap.Logger {
	config := zap.NewProductionConfig()

	level := zapcore.InfoLevel
	switch logLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"

	config.InitialFields = map[string]interface{}{
		"service": serviceName,
	}

	log, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(log)
	return log
}
