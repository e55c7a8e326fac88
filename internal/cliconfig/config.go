package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/gobwas/glob"
	"github.com/rs/zerolog"

	"github.com/meridian-labs/scriptframe/pkg/jsonl"
)

// DatabaseConfig names the database/sql driver and DSN a script's lazy
// connection is opened with. The driver must be registered by the
// embedding program.
type DatabaseConfig struct {
	Driver string
	DSN    string
}

// Config holds the resolved configuration for scriptframe scripts.
type Config struct {
	OutputRoot string
	InputRoot  string
	Pattern    string
	RotateRows int
	LogLevel   string

	Database DatabaseConfig
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OutputRoot: "output",
		InputRoot:  "input",
		Pattern:    jsonl.DefaultPattern,
		RotateRows: jsonl.DefaultRotateRows,
		LogLevel:   "info",
		Database:   DatabaseConfig{Driver: "sqlite"},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.OutputRoot == "" {
		return fmt.Errorf("output-root is required")
	}
	if c.InputRoot == "" {
		return fmt.Errorf("input-root is required")
	}
	if c.RotateRows <= 0 {
		return fmt.Errorf("rotate-rows must be positive")
	}
	if _, err := glob.Compile(c.Pattern); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", c.Pattern, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level. Call Validate first; an invalid
// level falls back to info here.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't
// been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntFromString parses a string to int and sets the destination if
// valid. Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}
