package config

import (
	"fmt"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// InitLogger initializes the Zap logger with Lumberjack log rotation and a 'logs' folder
func InitLogger() {
	err := os.MkdirAll("logs", os.ModePerm)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logs directory: %v", err))
	}

	// Log rotation via Lumberjack, one file per day
	logFile := &lumberjack.Logger{
		Filename:   fmt.Sprintf("logs/%s.log", time.Now().Format("2006-01-02")),
		MaxSize:    10, // Megabytes before rotation
		MaxBackups: 7,
		MaxAge:     28, // Days
		Compress:   true,
	}

	level := zapcore.InfoLevel
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	fileCore := zapcore.NewCore(encoder, zapcore.AddSync(logFile), level)
	consoleCore := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)

	Logger = zap.New(zapcore.NewTee(fileCore, consoleCore))

	defer Logger.Sync()
}
