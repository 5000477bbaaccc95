package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var global *zap.Logger = zap.NewNop()

// SetupLogger builds the process-wide logger for the given environment and
// returns a sugared handle for free-form key/value logging.
func SetupLogger(env string) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)

	switch env {
	case envLocal, envDev:
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = cfg.Build()
	case envProd:
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("cannot build logger: %s", err)
	}

	global = logger

	return logger.Sugar()
}

// Logger returns the process-wide structured logger.
func Logger() *zap.Logger {
	return global
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}
