// Package logging sets up the diagnostic logger used across prefixrun.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Log levels
const (
	LevelError = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// Config holds logging configuration
type Config struct {
	Level      int
	TimeFormat string
	ShowCaller bool
	Output     io.Writer // defaults to stderr
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Level:      LevelWarn,
		TimeFormat: "15:04:05",
	}
}

// New builds a logger from cfg. A nil cfg uses DefaultConfig.
func New(cfg *Config) *log.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: cfg.TimeFormat != "",
		TimeFormat:      cfg.TimeFormat,
		ReportCaller:    cfg.ShowCaller,
		Prefix:          "prefixrun",
	})
	logger.SetLevel(toCharm(cfg.Level))
	return logger
}

func toCharm(level int) log.Level {
	switch level {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarn:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
