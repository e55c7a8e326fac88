package log

import "sync"

// Entry is one captured log call.
type Entry struct {
	Level  string
	Msg    string
	Fields []Field
}

// Recorder implements Logger by capturing entries in memory. It is
// intended for tests that assert on emitted log events.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Debug records a debug-level entry.
func (r *Recorder) Debug(msg string, fields ...Field) { r.record("debug", msg, fields) }

// Info records an info-level entry.
func (r *Recorder) Info(msg string, fields ...Field) { r.record("info", msg, fields) }

// Warn records a warning-level entry.
func (r *Recorder) Warn(msg string, fields ...Field) { r.record("warn", msg, fields) }

// Error records an error-level entry.
func (r *Recorder) Error(msg string, fields ...Field) { r.record("error", msg, fields) }

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns how many entries at the given level carry the message.
func (r *Recorder) Count(level, msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e.Level == level && e.Msg == msg {
			n++
		}
	}
	return n
}

func (r *Recorder) record(level, msg string, fields []Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: fields})
}
