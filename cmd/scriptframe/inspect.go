package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/scriptframe/internal/cliconfig"
	"github.com/meridian-labs/scriptframe/pkg/jsonl"
	"github.com/meridian-labs/scriptframe/pkg/log"
)

// newInspectCmd reads a JSON-lines directory with a schema-less record
// type and reports how many lines decode cleanly.
func newInspectCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <dir>",
		Short: "Scan a JSON-lines directory and report decode tallies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewZerolog(cfg.Level())

			r, err := jsonl.NewReader(args[0],
				jsonl.WithLogger(logger),
				jsonl.WithPattern(cfg.Pattern),
			)
			if err != nil {
				return err
			}

			for _, err := range jsonl.Records(r, jsonl.FromMap) {
				if err != nil {
					return err
				}
				if cmd.Context().Err() != nil {
					return cmd.Context().Err()
				}
			}

			st := r.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "records: %d valid, %d skipped\n", st.Read, st.Skipped)
			return nil
		},
	}
}
