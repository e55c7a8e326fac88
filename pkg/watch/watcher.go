// Package watch notifies scripts when new JSON-lines files land in an
// input directory. Scripts that process drops from an upstream producer
// can block on the watcher between batch runs instead of polling.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/meridian-labs/scriptframe/pkg/jsonl"
	"github.com/meridian-labs/scriptframe/pkg/log"
)

// Config holds configuration options for a Watcher.
type Config struct {
	// Pattern filters event file names, matched on the base name.
	// Default: *.json
	Pattern string

	// Quiet suppresses repeat deliveries for the same path within the
	// window, collapsing bursts of write events into one notification.
	// Default: 100 milliseconds
	Quiet time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Pattern: jsonl.DefaultPattern,
		Quiet:   100 * time.Millisecond,
	}
}

// Watcher delivers the paths of matching files created or written in a
// single directory. Subdirectories are not watched.
type Watcher struct {
	dir     string
	pattern glob.Glob
	quiet   time.Duration
	logger  log.Logger
	fsw     *fsnotify.Watcher
	paths   chan string
}

// New creates a watcher on dir. The directory must exist.
func New(dir string, cfg Config, logger log.Logger) (*Watcher, error) {
	if cfg.Pattern == "" {
		cfg.Pattern = jsonl.DefaultPattern
	}
	if cfg.Quiet <= 0 {
		cfg.Quiet = 100 * time.Millisecond
	}

	g, err := glob.Compile(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", cfg.Pattern, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		dir:     dir,
		pattern: g,
		quiet:   cfg.Quiet,
		logger:  logger,
		fsw:     fsw,
		paths:   make(chan string, 16),
	}, nil
}

// Paths starts the watch loop and returns the delivery channel. The
// channel is closed when ctx ends or the underlying watcher is closed.
// Call Paths once per Watcher.
func (w *Watcher) Paths(ctx context.Context) <-chan string {
	go w.loop(ctx)
	return w.paths
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.paths)
	defer w.fsw.Close()

	lastSeen := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !w.pattern.Match(filepath.Base(ev.Name)) {
				continue
			}
			if seen, ok := lastSeen[ev.Name]; ok && time.Since(seen) < w.quiet {
				continue
			}
			lastSeen[ev.Name] = time.Now()

			w.logger.Debug("input file event", log.Str("path", ev.Name), log.Str("op", ev.Op.String()))
			select {
			case w.paths <- ev.Name:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", log.Err(err))
		}
	}
}
