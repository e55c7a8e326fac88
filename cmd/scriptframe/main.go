package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	_ "modernc.org/sqlite"

	"github.com/meridian-labs/scriptframe/internal/cliconfig"
)

const longHelp = `Toolkit for batch data-processing scripts that emit and consume
newline-delimited JSON records.

Output is sharded into rotating files per logical stream prefix; input
directories are read back line by line with best-effort decoding that
counts and skips malformed records instead of aborting the batch.

Configuration is resolved from flags, SCRIPTFRAME_* environment
variables, and a TOML config file, in that order of precedence.`

var exampleUsage = `  scriptframe inspect ./input/reviews
  scriptframe reshard reviews human_review --rotate-rows 500
  scriptframe --config ./scriptframe.toml inspect ./input/reviews`

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "scriptframe",
		Short:         "Batch script toolkit for JSON-lines data",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Build set of explicitly set flags: they win over env and file.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			path := cfgPath
			if path == "" {
				path = cliconfig.DefaultPath()
			}
			if path != "" && cliconfig.FileExists(path) {
				fc, err := cliconfig.LoadFile(path)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFile(&cfg, fc, changed)
			}

			if err := cliconfig.ApplyEnv(&cfg, changed); err != nil {
				return err
			}
			return cfg.Validate()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to TOML config file (default ~/.scriptframe/config.toml)")
	pf.StringVar(&cfg.OutputRoot, "output-root", cfg.OutputRoot, "directory output files are written under")
	pf.StringVar(&cfg.InputRoot, "input-root", cfg.InputRoot, "directory input subdirectories are resolved under")
	pf.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "glob pattern for input file names")
	pf.IntVar(&cfg.RotateRows, "rotate-rows", cfg.RotateRows, "lines per output file before rotation")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&cfg.Database.Driver, "db-driver", cfg.Database.Driver, "database/sql driver name")
	pf.StringVar(&cfg.Database.DSN, "db-dsn", cfg.Database.DSN, "database connection string")

	root.AddCommand(newInspectCmd(&cfg))
	root.AddCommand(newReshardCmd(&cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
