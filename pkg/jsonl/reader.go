package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"github.com/meridian-labs/scriptframe/pkg/log"
)

// Stats tallies line outcomes over one read pass.
type Stats struct {
	Read    int // lines decoded into records
	Skipped int // lines that failed decoding or validation
}

// Reader walks the JSON-lines files of a single directory and hands
// each decoded line mapping to a record factory. Files are matched by
// base name against a glob pattern, non-recursively, in directory
// listing order; callers must not depend on cross-file ordering.
type Reader struct {
	dir     string
	pattern glob.Glob
	logger  log.Logger
	stats   Stats
}

// NewReader creates a Reader over dir. It fails only if the configured
// pattern does not compile.
func NewReader(dir string, opts ...Option) (*Reader, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g, err := glob.Compile(o.pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", o.pattern, err)
	}
	return &Reader{
		dir:     dir,
		pattern: g,
		logger:  o.logger,
	}, nil
}

// Stats returns the tallies accumulated so far. Meaningful once the
// sequence from Records has been consumed.
func (r *Reader) Stats() Stats {
	return r.stats
}

// Records returns a lazy, one-shot sequence of decoded records.
//
// Lines that fail JSON parsing or factory validation are logged,
// counted in Stats, and skipped; they never end the sequence. A
// filesystem error is yielded once with a zero record and terminates
// the sequence. A directory that does not exist reads as empty. After
// the last file the final tally is logged once.
func Records[T Record](r *Reader, from Factory[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		entries, err := os.ReadDir(r.dir)
		if err != nil {
			if os.IsNotExist(err) {
				r.finish()
				return
			}
			yield(zero, err)
			return
		}

		for _, entry := range entries {
			if entry.IsDir() || !r.pattern.Match(entry.Name()) {
				continue
			}
			path := filepath.Join(r.dir, entry.Name())
			r.logger.Info("reading file", log.Str("path", path))

			more, err := readFile(r, path, from, yield)
			if err != nil {
				yield(zero, err)
				return
			}
			if !more {
				return
			}
		}
		r.finish()
	}
}

// readFile reads one file line by line, yielding decoded records.
// Returns more=false when the consumer stopped the iteration.
func readFile[T Record](r *Reader, path string, from Factory[T], yield func(T, error) bool) (more bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// ReadBytes puts no cap on line length: a record is as large as the
	// writer made it, and an oversized garbage line is still just one
	// skipped line, not the end of the read.
	br := bufio.NewReader(f)
	for {
		line, readErr := br.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return false, readErr
		}

		if len(bytes.TrimSpace(line)) > 0 {
			if !decodeLine(r, line, from, yield) {
				return false, nil
			}
		}

		if readErr != nil {
			// EOF; the last line may lack a trailing newline.
			return true, nil
		}
	}
}

// decodeLine parses and validates one line, yielding the record on
// success and counting the line as skipped otherwise. Returns false
// when the consumer stopped the iteration.
func decodeLine[T Record](r *Reader, line []byte, from Factory[T], yield func(T, error) bool) bool {
	var m map[string]any
	if err := json.Unmarshal(line, &m); err != nil {
		r.stats.Skipped++
		r.logger.Warn("skipping undecodable line",
			log.Str("line", string(bytes.TrimSpace(line))),
			log.Err(err),
		)
		return true
	}

	rec, err := from(m)
	if err != nil {
		r.stats.Skipped++
		r.logger.Warn("skipping invalid record",
			log.Any("record", m),
			log.Err(err),
		)
		return true
	}

	r.stats.Read++
	return yield(rec, nil)
}

func (r *Reader) finish() {
	r.logger.Info("finished reading json files",
		log.Int("read", r.stats.Read),
		log.Int("skipped", r.stats.Skipped),
	)
}
