// Package config provides configuration for fentrack.
package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fentrack-go/internal/engine"
	"github.com/lgbarn/fentrack-go/internal/errors"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// EnvPrefix is the prefix of every environment variable read by ApplyEnv,
// e.g. FENTRACK_START_FEN or FENTRACK_SERVER_ADDR.
const EnvPrefix = "FENTRACK"

// Config holds all program configuration.
type Config struct {
	// StartFEN is loaded before the first prompt when set, so the
	// interactive loop starts straight at the move prompt.
	StartFEN string `yaml:"start_fen" envconfig:"START_FEN"`

	// Prompt is printed before each line of interactive input.
	Prompt string `yaml:"prompt" envconfig:"PROMPT"`

	// JSONOutput prints positions as JSON views instead of text boards.
	JSONOutput bool `yaml:"json_output" envconfig:"JSON_OUTPUT"`

	// Logging
	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" envconfig:"LOG_FORMAT"`
	LogFile   string `yaml:"log_file" envconfig:"LOG_FILE"`

	Server ServerConfig `yaml:"server" envconfig:"SERVER"`
	Replay ReplayConfig `yaml:"replay" envconfig:"REPLAY"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Prompt:    "> ",
		LogLevel:  zerolog.InfoLevel.String(),
		LogFormat: LogFormatConsole,
		Server:    *NewServerConfig(),
		Replay:    *NewReplayConfig(),
	}
}

// Validate checks the configuration for values the program cannot run with.
// Every error wraps ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.StartFEN != "" {
		if _, err := engine.NewPositionFromFEN(c.StartFEN); err != nil {
			return invalid("start_fen", err.Error())
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return invalid("log_level", fmt.Sprintf("unknown level %q", c.LogLevel))
	}
	if c.LogFormat != LogFormatConsole && c.LogFormat != LogFormatJSON {
		return invalid("log_format", fmt.Sprintf("want %q or %q, got %q", LogFormatConsole, LogFormatJSON, c.LogFormat))
	}
	if err := c.Server.validate(); err != nil {
		return err
	}
	return c.Replay.validate()
}

func invalid(field, msg string) error {
	return errors.Wrapf(errors.ErrInvalidConfig, "%s: %s", field, msg)
}
