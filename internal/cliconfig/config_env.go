package cliconfig

import "os"

// ApplyEnv applies configuration from environment variables
// (SCRIPTFRAME_*). It respects flags that have been explicitly set
// (changed map). Returns an error if a variable has an invalid format.
func ApplyEnv(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("output-root", os.Getenv("SCRIPTFRAME_OUTPUT_ROOT"), &cfg.OutputRoot)
	s.setString("input-root", os.Getenv("SCRIPTFRAME_INPUT_ROOT"), &cfg.InputRoot)
	s.setString("pattern", os.Getenv("SCRIPTFRAME_PATTERN"), &cfg.Pattern)
	s.setString("log-level", os.Getenv("SCRIPTFRAME_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("db-driver", os.Getenv("SCRIPTFRAME_DB_DRIVER"), &cfg.Database.Driver)
	s.setString("db-dsn", os.Getenv("SCRIPTFRAME_DB_DSN"), &cfg.Database.DSN)

	return s.setIntFromString("rotate-rows", os.Getenv("SCRIPTFRAME_ROTATE_ROWS"), &cfg.RotateRows)
}
