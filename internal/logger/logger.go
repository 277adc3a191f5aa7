package logger

import (
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSize = 10
	maxBack = 5
	maxAge  = 30
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds a logger that writes JSON lines to a rotated file.
// The terminal belongs to the interactive session, so nothing is written to
// stdout or stderr. An empty filePath disables logging.
func NewLogger(filePath, serviceName, level string) (zerolog.Logger, io.Closer) {
	if filePath == "" {
		return zerolog.Nop(), nopCloser{}
	}

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}

	fileRotator := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize, // megabytes
		MaxBackups: maxBack,
		MaxAge:     maxAge, // days
		Compress:   true,
	}

	logger := zerolog.New(fileRotator).
		Level(logLevel).
		With().
		Str("service_name", serviceName).
		Timestamp().
		Logger()

	return logger, fileRotator
}
