// Package logging builds the zap logger of the deepcopy CLI.
package logging

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"deepcopier/internal/config"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// UseConsole decides the encoder: "console" and "json" are explicit, "auto"
// picks console when stderr is a terminal.
func UseConsole(format string, terminal bool) bool {
	switch format {
	case "console":
		return true
	case "json":
		return false
	default:
		return terminal
	}
}

// New builds a logger from the logging section. verbose forces debug level.
func New(cfg config.Logging, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	if UseConsole(cfg.Format, IsTerminal(os.Stderr)) {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
