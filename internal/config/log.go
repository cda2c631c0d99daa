package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// LogConfig holds logging and terminal output settings.
type LogConfig struct {
	Level  string
	Format string

	// NoColor disables colored board output even on a terminal.
	NoColor bool
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: LogFormatConsole,
	}
}

// Validate checks that the level parses and the format is known.
func (l *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	if l.Format != LogFormatConsole && l.Format != LogFormatJSON {
		return fmt.Errorf("log format %q: %w", l.Format, errors.ErrInvalidConfig)
	}
	return nil
}

// NewLogger builds a zap logger writing to stderr. The console format is
// the human-readable development encoder; json is the production encoder.
func NewLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, errors.ErrInvalidConfig)
	}

	var zc zap.Config
	switch format {
	case LogFormatJSON:
		zc = zap.NewProductionConfig()
	case LogFormatConsole:
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("log format %q: %w", format, errors.ErrInvalidConfig)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// Logger builds the logger described by the section.
func (l *LogConfig) Logger() (*zap.Logger, error) {
	return NewLogger(l.Level, l.Format)
}
