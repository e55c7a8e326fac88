package scriptframe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/meridian-labs/scriptframe/pkg/jsonl"
	"github.com/meridian-labs/scriptframe/pkg/log"
)

// Env is the runtime environment handed to a running script. One Env
// serves one script invocation; it is not safe for concurrent use.
type Env struct {
	// Logger is the script's structured logger.
	Logger log.Logger

	// Config is the resolved configuration the script runs with.
	Config Config

	// Writer persists records under <output root>/<script name>/,
	// rotating files per prefix.
	Writer *jsonl.Writer

	name string

	dbOnce sync.Once
	db     *sql.DB
	dbErr  error
}

// EnvOption configures optional behavior of an Env.
type EnvOption func(*envOptions)

type envOptions struct {
	logger log.Logger
}

// WithLogger overrides the logger the Env would otherwise build from
// the configured log level. Mainly useful in tests and embedders with
// their own logging setup.
func WithLogger(logger log.Logger) EnvOption {
	return func(o *envOptions) {
		o.logger = logger
	}
}

// NewEnv prepares the runtime environment for the named script:
// logger, output directories, and the rotating writer. The database
// connection is deferred until the first DB call.
func NewEnv(name string, cfg Config, opts ...EnvOption) (*Env, error) {
	if name == "" {
		return nil, errors.New("script name must not be empty")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o envOptions
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = log.NewZerolog(cfg.Level())
	}

	outDir := filepath.Join(cfg.OutputRoot, name)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	logger.Info("initialized output directory", log.Str("path", outDir))

	writer := jsonl.NewWriter(outDir,
		jsonl.WithLogger(logger),
		jsonl.WithRotateRows(cfg.RotateRows),
	)

	return &Env{
		Logger: logger,
		Config: cfg,
		Writer: writer,
		name:   name,
	}, nil
}

// Name returns the script name the environment was built for.
func (e *Env) Name() string {
	return e.name
}

// InputDir resolves sub under the configured input root.
func (e *Env) InputDir(sub string) string {
	return filepath.Join(e.Config.InputRoot, sub)
}

// NewReader returns a reader over the named input subdirectory using
// the configured glob pattern.
func (e *Env) NewReader(sub string) (*jsonl.Reader, error) {
	return jsonl.NewReader(e.InputDir(sub),
		jsonl.WithLogger(e.Logger),
		jsonl.WithPattern(e.Config.Pattern),
	)
}

// DB opens the configured database on first call and returns the same
// connection afterwards. The connection is verified with a ping before
// being handed out; credentials are masked in the connection log line.
func (e *Env) DB(ctx context.Context) (*sql.DB, error) {
	e.dbOnce.Do(func() {
		db, err := sql.Open(e.Config.Database.Driver, e.Config.Database.DSN)
		if err != nil {
			e.dbErr = err
			return
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			e.dbErr = err
			return
		}
		e.db = db
		e.Logger.Info("connected to database",
			log.Str("driver", e.Config.Database.Driver),
			log.Str("dsn", maskDSN(e.Config.Database.DSN)),
		)
	})
	return e.db, e.dbErr
}

// Close releases resources held by the environment.
func (e *Env) Close() error {
	if e.db != nil {
		return e.db.Close()
	}
	return nil
}

// maskDSN hides the password of URL-style DSNs. Non-URL DSNs pass
// through unchanged.
func maskDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, set := u.User.Password(); set {
		u.User = url.UserPassword(u.User.Username(), "*****")
	}
	return u.String()
}
