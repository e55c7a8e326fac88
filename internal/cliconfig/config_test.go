package cliconfig

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OutputRoot != "output" {
		t.Errorf("OutputRoot = %v, want output", cfg.OutputRoot)
	}
	if cfg.Pattern != "*.json" {
		t.Errorf("Pattern = %v, want *.json", cfg.Pattern)
	}
	if cfg.RotateRows != 200 {
		t.Errorf("RotateRows = %v, want 200", cfg.RotateRows)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %v, want sqlite", cfg.Database.Driver)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing output root",
			mutate:  func(c *Config) { c.OutputRoot = "" },
			wantErr: true,
		},
		{
			name:    "missing input root",
			mutate:  func(c *Config) { c.InputRoot = "" },
			wantErr: true,
		},
		{
			name:    "zero rotate rows",
			mutate:  func(c *Config) { c.RotateRows = 0 },
			wantErr: true,
		},
		{
			name:    "negative rotate rows",
			mutate:  func(c *Config) { c.RotateRows = -5 },
			wantErr: true,
		},
		{
			name:    "bad glob pattern",
			mutate:  func(c *Config) { c.Pattern = "[" },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "chatty" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Level(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	if got := cfg.Level(); got != zerolog.WarnLevel {
		t.Errorf("Level() = %v, want warn", got)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SCRIPTFRAME_OUTPUT_ROOT", "/tmp/out")
	t.Setenv("SCRIPTFRAME_ROTATE_ROWS", "50")
	t.Setenv("SCRIPTFRAME_DB_DSN", "file:test.db")

	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnv returned error: %v", err)
	}

	if cfg.OutputRoot != "/tmp/out" {
		t.Errorf("OutputRoot = %v, want /tmp/out", cfg.OutputRoot)
	}
	if cfg.RotateRows != 50 {
		t.Errorf("RotateRows = %v, want 50", cfg.RotateRows)
	}
	if cfg.Database.DSN != "file:test.db" {
		t.Errorf("Database.DSN = %v, want file:test.db", cfg.Database.DSN)
	}
}

func TestApplyEnvRespectsChangedFlags(t *testing.T) {
	t.Setenv("SCRIPTFRAME_OUTPUT_ROOT", "/tmp/env")

	cfg := DefaultConfig()
	cfg.OutputRoot = "/tmp/flag"
	if err := ApplyEnv(&cfg, map[string]bool{"output-root": true}); err != nil {
		t.Fatalf("ApplyEnv returned error: %v", err)
	}

	if cfg.OutputRoot != "/tmp/flag" {
		t.Errorf("OutputRoot = %v, want flag value preserved", cfg.OutputRoot)
	}
}

func TestApplyEnvBadInt(t *testing.T) {
	t.Setenv("SCRIPTFRAME_ROTATE_ROWS", "many")

	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg, map[string]bool{}); err == nil {
		t.Error("ApplyEnv should fail on a non-numeric rotate_rows")
	}
}
