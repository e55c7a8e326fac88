package jsonl

import (
	"os"

	"github.com/meridian-labs/scriptframe/pkg/log"
)

// DefaultPattern matches the files a Reader considers by default.
const DefaultPattern = "*.json"

// Option configures optional behavior of a Writer or Reader.
type Option func(*options)

type options struct {
	logger     log.Logger
	rotateRows int
	pattern    string
	dirMode    os.FileMode
	fileMode   os.FileMode
}

func defaultOptions() options {
	return options{
		logger:     log.NewNoop(),
		rotateRows: DefaultRotateRows,
		pattern:    DefaultPattern,
		dirMode:    0o755,
		fileMode:   0o644,
	}
}

// WithLogger sets the logger used for progress and tally events.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRotateRows sets how many lines a file holds before the writer
// rolls over. Non-positive values keep the default of 200.
func WithRotateRows(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.rotateRows = n
		}
	}
}

// WithPattern sets the glob pattern a Reader matches file names
// against. The match is on base names only; subdirectories are never
// descended into.
func WithPattern(pattern string) Option {
	return func(o *options) {
		if pattern != "" {
			o.pattern = pattern
		}
	}
}

// WithDirMode sets the permission bits for created output directories.
func WithDirMode(mode os.FileMode) Option {
	return func(o *options) {
		o.dirMode = mode
	}
}

// WithFileMode sets the permission bits for created output files.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}
