package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/scriptframe"
	"github.com/meridian-labs/scriptframe/internal/cliconfig"
	"github.com/meridian-labs/scriptframe/pkg/jsonl"
	"github.com/meridian-labs/scriptframe/pkg/log"
)

// reshardScript re-shards an input directory of JSON-lines files into
// rotated output files under a new prefix. Malformed lines are dropped
// along the way, so a reshard doubles as a cleanup pass.
type reshardScript struct {
	src    string
	prefix string
}

func (reshardScript) Name() string { return "reshard" }

func (s reshardScript) Run(ctx context.Context, env *scriptframe.Env) error {
	r, err := env.NewReader(s.src)
	if err != nil {
		return err
	}

	for rec, err := range jsonl.Records(r, jsonl.FromMap) {
		if err != nil {
			return err
		}
		if err := env.Writer.Append(s.prefix, rec); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	st := r.Stats()
	env.Logger.Info("reshard complete",
		log.Str("source", s.src),
		log.Str("prefix", s.prefix),
		log.Int("read", st.Read),
		log.Int("skipped", st.Skipped),
	)
	return nil
}

func newReshardCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "reshard <input-subdir> <prefix>",
		Short: "Rewrite an input directory into rotated files under a new prefix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := reshardScript{src: args[0], prefix: args[1]}
			return scriptframe.RunScript(cmd.Context(), s, *cfg)
		},
	}
}
