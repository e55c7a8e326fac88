package jsonl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meridian-labs/scriptframe/pkg/log"
)

// Writer appends records as JSON lines to rotating files grouped by
// prefix under a base directory.
//
// The first write to a prefix creates a session directory named
// <prefix>_<unix timestamp>; files inside it are named
// <prefix>_<index>.json with a zero-based index that advances every
// rotateRows lines. File handles are scoped to a single line: open in
// append mode, write, close.
//
// A Writer assumes exactly one writer per prefix per process. Sharing
// a prefix across goroutines or processes needs external coordination.
type Writer struct {
	dir      string
	tracker  *tracker
	logger   log.Logger
	dirMode  os.FileMode
	fileMode os.FileMode
	lastFile string
}

// NewWriter creates a Writer rooted at dir. The directory itself is
// created lazily on first append.
func NewWriter(dir string, opts ...Option) *Writer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Writer{
		dir:      dir,
		tracker:  newTracker(o.rotateRows),
		logger:   o.logger,
		dirMode:  o.dirMode,
		fileMode: o.fileMode,
	}
}

// Append writes records in the order given, one JSON line each, to the
// current file for prefix. A batch that crosses the rotation threshold
// spreads across consecutive files within this single call. The first
// error stops the batch and is returned; lines already written stay on
// disk.
func (w *Writer) Append(prefix string, records ...Record) error {
	st := w.tracker.getOrCreate(prefix)

	outDir := filepath.Join(w.dir, fmt.Sprintf("%s_%d", prefix, st.session))
	if st.filesWritten == 0 && st.rowsWritten == 0 {
		if err := os.MkdirAll(outDir, w.dirMode); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		w.logger.Info("created output directory", log.Str("path", outDir))
	}

	for _, rec := range records {
		st = w.tracker.getOrCreate(prefix)
		name := fmt.Sprintf("%s_%d.json", prefix, st.filesWritten)
		if name != w.lastFile {
			w.logger.Info("writing file", log.Str("file", name))
			w.lastFile = name
		}
		if err := w.writeLine(filepath.Join(outDir, name), rec); err != nil {
			return err
		}
		w.tracker.recordWrite(prefix)
	}
	return nil
}

// writeLine serializes one record and appends it as a newline-terminated
// JSON line. The handle is closed before returning so a failed batch
// never leaks an open file.
func (w *Writer) writeLine(path string, rec Record) error {
	m, err := rec.AsMap()
	if err != nil {
		return fmt.Errorf("serialize record: %w", err)
	}
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, w.fileMode)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
