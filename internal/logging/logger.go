// Package logging builds the zap logger used by the bem command.
package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines the knobs for building the CLI logger.
type Config struct {
	// Component identifies the emitting subsystem (e.g., "lint").
	Component string
	// Level controls the minimum severity ("debug", "info", "warn", "error").
	// Empty means "warn", so only problems reach the terminal.
	Level string
	// Output receives log lines. Defaults to os.Stderr so stdout stays
	// reserved for lint output and composed class names.
	Output io.Writer
}

// LevelFor returns "debug" in verbose mode and "warn" otherwise.
func LevelFor(verbose bool) string {
	if verbose {
		return "debug"
	}
	return "warn"
}

// NewLogger builds a console zap logger.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level == "" {
		level.SetLevel(zapcore.WarnLevel)
	} else if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "",
		MessageKey:     "message",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(out),
		level,
	)

	logger := zap.New(core)
	if cfg.Component != "" {
		logger = logger.Named(cfg.Component)
	}

	return logger, nil
}
