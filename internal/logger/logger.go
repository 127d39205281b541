package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gitmcp/gitmcp/internal/config"
)

// New builds the process logger. Stdout is reserved for the MCP transport, so
// everything goes to stderr and, when configured, a size-rotated log file.
func New(cfg *config.Config) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.LogLevel); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			level,
		),
	}
	if cfg.LogFile != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			fileSink,
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...))
}
