package app

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/inepdata/surveysweep/pkg/logging"
)

// NewLogger creates a configured logger based on the application
// configuration. Log level precedence (highest to lowest):
//  1. -v/--verbose flag (shortcut for debug)
//  2. -q/--quiet flag (shortcut for warn)
//  3. LOG_LEVEL environment variable
//  4. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config)
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if config.LogFormat == "json" {
		logger = logging.New(os.Stderr)
	} else {
		logger = logging.NewConsole()
	}
	logger = logger.Level(level)

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	logging.SetDefault(logger)
	return logger
}

func determineLogLevel(config *Config) zerolog.Level {
	switch {
	case config.Verbose:
		return zerolog.DebugLevel
	case config.Quiet:
		return zerolog.WarnLevel
	}

	if level, err := zerolog.ParseLevel(config.LogLevel); err == nil && level != zerolog.NoLevel {
		return level
	}
	return zerolog.InfoLevel
}
