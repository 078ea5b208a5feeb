// SPDX-License-Identifier: MIT
// Package logging builds the zap loggers used by the w33 command and by
// w33.Build. Library packages never log; they receive a *zap.Logger only
// through the facade's WithLogger option.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config carries the parameters for New. Zero values select defaults.
type Config struct {
	// Level: "debug", "info", "warn" or "error" (case-insensitive). Default "info".
	Level string `mapstructure:"level" yaml:"level" json:"level"`

	// Format: "json" or "console". Default "console".
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// OutputPaths are zap sink URLs or file paths. Default ["stderr"].
	OutputPaths []string `mapstructure:"output_paths" yaml:"output_paths" json:"output_paths"`
}

// Formats accepted by New.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ParseLevel converts a level name to a zapcore.Level. Unknown names are an
// error so that a typo in configuration does not silently drop debug output.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New constructs a zap logger according to cfg.
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stderr"}
	}

	var encCfg zapcore.EncoderConfig
	encoding := FormatConsole
	switch cfg.Format {
	case FormatJSON:
		encCfg = zap.NewProductionEncoderConfig()
		encoding = FormatJSON
	case "", FormatConsole:
		encCfg = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      encoding == FormatConsole,
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      cfg.OutputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}
	z, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: failed to build zap logger: %w", err)
	}
	return z, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger { return zap.NewNop() }
