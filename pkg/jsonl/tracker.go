package jsonl

import (
	"sync"
	"time"
)

// DefaultRotateRows is the number of lines a file may hold before the
// writer rolls over to the next index.
const DefaultRotateRows = 200

// rotationState tracks write progress for one prefix. session is the
// Unix timestamp captured on the prefix's first write; it names the
// output directory and never changes afterwards.
type rotationState struct {
	filesWritten int
	rowsWritten  int
	session      int64
}

// tracker owns the per-prefix rotation states of a single writer.
// Invariant: rowsWritten stays within [0, rotateRows).
type tracker struct {
	mu         sync.Mutex
	rotateRows int
	states     map[string]*rotationState
	now        func() time.Time
}

func newTracker(rotateRows int) *tracker {
	return &tracker{
		rotateRows: rotateRows,
		states:     make(map[string]*rotationState),
		now:        time.Now,
	}
}

// getOrCreate returns a snapshot of the state for prefix, inserting a
// fresh one on first use. Idempotent after the first call.
func (t *tracker) getOrCreate(prefix string) rotationState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return *t.lookup(prefix)
}

// recordWrite counts one written row against prefix and rolls the file
// index when the row count reaches the threshold.
func (t *tracker) recordWrite(prefix string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.lookup(prefix)
	st.rowsWritten++
	if st.rowsWritten >= t.rotateRows {
		st.rowsWritten = 0
		st.filesWritten++
	}
}

func (t *tracker) lookup(prefix string) *rotationState {
	st, ok := t.states[prefix]
	if !ok {
		st = &rotationState{session: t.now().Unix()}
		t.states[prefix] = st
	}
	return st
}
