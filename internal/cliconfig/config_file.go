package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config for TOML decoding.
type fileConfig struct {
	OutputRoot string `toml:"output_root"`
	InputRoot  string `toml:"input_root"`
	Pattern    string `toml:"pattern"`
	RotateRows int    `toml:"rotate_rows"`
	LogLevel   string `toml:"log_level"`

	Database struct {
		Driver string `toml:"driver"`
		DSN    string `toml:"dsn"`
	} `toml:"database"`
}

// LoadFile reads and parses a TOML config file.
func LoadFile(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultPath returns the default configuration file path,
// ~/.scriptframe/config.toml, or "" when the home directory is
// inaccessible.
func DefaultPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".scriptframe", "config.toml")
	}
	return ""
}

// ApplyFile applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFile(cfg *Config, fc fileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("output-root", fc.OutputRoot, &cfg.OutputRoot)
	s.setString("input-root", fc.InputRoot, &cfg.InputRoot)
	s.setString("pattern", fc.Pattern, &cfg.Pattern)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("db-driver", fc.Database.Driver, &cfg.Database.Driver)
	s.setString("db-dsn", fc.Database.DSN, &cfg.Database.DSN)

	s.setInt("rotate-rows", fc.RotateRows, &cfg.RotateRows)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
