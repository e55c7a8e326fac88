package scriptframe

import (
	"context"
	"fmt"

	"github.com/meridian-labs/scriptframe/pkg/log"
)

// Run looks up the registered script with the given name, builds its
// environment, and executes it.
func Run(ctx context.Context, name string, cfg Config, opts ...EnvOption) error {
	s, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown script %q (registered: %v)", name, Names())
	}
	return RunScript(ctx, s, cfg, opts...)
}

// RunScript builds an environment for the script and executes it. The
// script does not need to be registered. The environment is closed when
// the script returns.
func RunScript(ctx context.Context, s Script, cfg Config, opts ...EnvOption) error {
	env, err := NewEnv(s.Name(), cfg, opts...)
	if err != nil {
		return err
	}
	defer env.Close()

	env.Logger.Info("running script", log.Str("script", s.Name()))
	if err := s.Run(ctx, env); err != nil {
		env.Logger.Error("script failed", log.Str("script", s.Name()), log.Err(err))
		return err
	}
	env.Logger.Info("script finished", log.Str("script", s.Name()))
	return nil
}
