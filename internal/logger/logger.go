package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"robotswatch/internal/common"
)

// New creates a zerolog logger from the given configuration.
// Console and file outputs can be enabled independently; file output is
// rotated with lumberjack.
func New(cfg LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, common.WrapErrorf(err, "invalid log level '%s'", cfg.LogLevel)
	}
	if cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	if cfg.EnableFile && cfg.LogFile == "" {
		return zerolog.Logger{}, common.NewValidationError("log_file", cfg.LogFile, "file path required when file logging enabled")
	}

	writers := createWriters(cfg)
	if len(writers) == 0 {
		return zerolog.Logger{}, common.NewError("no log output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	zerologInstance := zerolog.New(multiWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	zerolog.SetGlobalLevel(level)

	return zerologInstance, nil
}

// createWriters creates the appropriate writers based on configuration
func createWriters(cfg LogConfig) []io.Writer {
	var writers []io.Writer

	if cfg.EnableConsole {
		if cfg.LogFormat == "json" {
			writers = append(writers, os.Stderr)
		} else {
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		}
	}

	if cfg.EnableFile {
		maxSize := cfg.MaxLogSizeMB
		if maxSize <= 0 {
			maxSize = 100
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    maxSize,
			MaxBackups: cfg.MaxLogBackups,
			Compress:   true,
		})
	}

	return writers
}
