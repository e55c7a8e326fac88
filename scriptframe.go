// Package scriptframe wires the boilerplate shared by batch
// data-processing scripts: a structured logger, resolved configuration,
// rotating JSON-lines output, tolerant JSON-lines input, and a lazily
// opened database connection.
//
// Example usage:
//
//	type backfill struct{}
//
//	func (backfill) Name() string { return "backfill" }
//
//	func (backfill) Run(ctx context.Context, env *scriptframe.Env) error {
//	    db, err := env.DB(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    // query db, then:
//	    return env.Writer.Append("human_review", recs...)
//	}
//
//	func init() { scriptframe.Register(backfill{}) }
//
//	// elsewhere:
//	cfg := scriptframe.DefaultConfig()
//	if err := scriptframe.Run(ctx, "backfill", cfg); err != nil {
//	    log.Fatal(err)
//	}
package scriptframe

import (
	"context"

	"github.com/meridian-labs/scriptframe/internal/cliconfig"
	"github.com/meridian-labs/scriptframe/pkg/jsonl"
)

// Record is any value the Writer can persist as one JSON line.
// Re-exported from pkg/jsonl for convenient access.
type Record = jsonl.Record

// Config holds the configuration scripts run with.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// DatabaseConfig names the database/sql driver and DSN used by Env.DB.
type DatabaseConfig = cliconfig.DatabaseConfig

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Script is the unit the frame runs: anything that has a name and can
// run against a prepared environment.
type Script interface {
	// Name identifies the script. It selects the output subdirectory
	// and must not be empty.
	Name() string

	// Run executes the script. The environment carries the logger,
	// configuration, writer, and database access.
	Run(ctx context.Context, env *Env) error
}
