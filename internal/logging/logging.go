// Package logging builds the zap logger shared by the viewer and the CLI.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level       string            `json:"level"`
	Format      string            `json:"format"` // "json" or "console"
	OutputPath  string            `json:"output_path"`
	Fields      map[string]string `json:"fields"`
	Development bool              `json:"development"`
}

// Rotation settings of the log file.
const (
	maxBackups = 3
	maxAgeDays = 28
)

// NewLogger creates a logger from config. With an OutputPath the log goes to a
// rotating file; otherwise, or in debug mode, it goes to stderr in console format.
func NewLogger(config Config, debugMode bool) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		if config.Level != "" {
			return nil, fmt.Errorf("log level %q: %w", config.Level, err)
		}
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if debugMode {
		level.SetLevel(zap.DebugLevel)
	}

	var encCfg zapcore.EncoderConfig
	if config.Development || debugMode {
		encCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	var encoder zapcore.Encoder
	if config.Format == "console" || debugMode {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	var sink zapcore.WriteSyncer
	if config.OutputPath == "" || debugMode {
		sink = zapcore.Lock(os.Stderr)
	} else {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   config.OutputPath,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		})
	}

	opts := []zap.Option{zap.AddCaller()}
	if config.Development {
		opts = append(opts, zap.Development())
	}
	logger := zap.New(zapcore.NewCore(encoder, sink, level), opts...)

	if len(config.Fields) > 0 {
		fields := make([]zap.Field, 0, len(config.Fields))
		for k, v := range config.Fields {
			fields = append(fields, zap.String(k, v))
		}
		logger = logger.With(fields...)
	}
	return logger, nil
}

// NewDefaultLogger returns an info-level console logger on stderr.
func NewDefaultLogger() *zap.Logger {
	logger, err := NewLogger(Config{Level: "info", Format: "console"}, false)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
