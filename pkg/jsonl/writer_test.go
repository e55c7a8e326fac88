package jsonl

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/scriptframe/pkg/log"
)

type event struct {
	ID   int
	Name string
}

func (e event) AsMap() (map[string]any, error) {
	return map[string]any{"id": e.ID, "name": e.Name}, nil
}

func eventFromMap(m map[string]any) (event, error) {
	id, ok := m["id"].(float64)
	if !ok {
		return event{}, errors.New("missing or invalid id")
	}
	name, ok := m["name"].(string)
	if !ok {
		return event{}, errors.New("missing or invalid name")
	}
	return event{ID: int(id), Name: name}, nil
}

type brokenRecord struct{}

func (brokenRecord) AsMap() (map[string]any, error) {
	return nil, errors.New("cannot flatten")
}

func events(n int) []Record {
	recs := make([]Record, n)
	for i := range recs {
		recs[i] = event{ID: i, Name: fmt.Sprintf("event-%d", i)}
	}
	return recs
}

// sessionDir returns the single session directory created under base.
func sessionDir(t *testing.T, base, prefix string) string {
	t.Helper()
	entries, err := os.ReadDir(base)
	require.NoError(t, err)

	var dirs []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), prefix+"_") {
			dirs = append(dirs, e.Name())
		}
	}
	require.Len(t, dirs, 1, "expected one session directory for %q", prefix)
	return filepath.Join(base, dirs[0])
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	trimmed := strings.TrimSuffix(string(b), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestAppendRotatesAtThreshold(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, WithRotateRows(3))

	require.NoError(t, w.Append("batch", events(7)...))

	dir := sessionDir(t, base, "batch")
	require.Len(t, readLines(t, filepath.Join(dir, "batch_0.json")), 3)
	require.Len(t, readLines(t, filepath.Join(dir, "batch_1.json")), 3)
	require.Len(t, readLines(t, filepath.Join(dir, "batch_2.json")), 1)
}

func TestAppendDefaultThreshold(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)

	require.NoError(t, w.Append("full", events(200)...))

	dir := sessionDir(t, base, "full")
	require.Len(t, readLines(t, filepath.Join(dir, "full_0.json")), 200)
	_, err := os.Stat(filepath.Join(dir, "full_1.json"))
	require.True(t, os.IsNotExist(err), "no second file expected after exactly 200 rows")

	require.NoError(t, w.Append("full", event{ID: 200, Name: "overflow"}))
	require.Len(t, readLines(t, filepath.Join(dir, "full_1.json")), 1)
}

func TestAppendPreservesOrder(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)

	require.NoError(t, w.Append("ordered", events(10)...))

	dir := sessionDir(t, base, "ordered")
	lines := readLines(t, filepath.Join(dir, "ordered_0.json"))
	require.Len(t, lines, 10)
	for i, line := range lines {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		require.Equal(t, float64(i), m["id"], "line %d out of order", i)
	}
}

func TestAppendAccumulatesAcrossCalls(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)

	require.NoError(t, w.Append("inc", events(2)...))
	require.NoError(t, w.Append("inc", events(3)...))

	dir := sessionDir(t, base, "inc")
	require.Len(t, readLines(t, filepath.Join(dir, "inc_0.json")), 5)
}

func TestAppendInterleavedPrefixes(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, WithRotateRows(4))

	for i := 0; i < 5; i++ {
		require.NoError(t, w.Append("a", event{ID: i, Name: "a"}))
		require.NoError(t, w.Append("b", event{ID: i, Name: "b"}))
	}

	aDir := sessionDir(t, base, "a")
	bDir := sessionDir(t, base, "b")

	// Five rows per prefix at threshold 4: each rotated once, independently.
	require.Len(t, readLines(t, filepath.Join(aDir, "a_0.json")), 4)
	require.Len(t, readLines(t, filepath.Join(aDir, "a_1.json")), 1)
	require.Len(t, readLines(t, filepath.Join(bDir, "b_0.json")), 4)
	require.Len(t, readLines(t, filepath.Join(bDir, "b_1.json")), 1)
}

func TestAppendLogsFileTransitions(t *testing.T) {
	base := t.TempDir()
	rec := log.NewRecorder()
	w := NewWriter(base, WithRotateRows(2), WithLogger(rec))

	require.NoError(t, w.Append("logs", events(5)...))

	require.Equal(t, 1, rec.Count("info", "created output directory"))
	// Files logs_0 through logs_2, announced once each.
	require.Equal(t, 3, rec.Count("info", "writing file"))
}

func TestAppendSerializeErrorStopsBatch(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base)

	err := w.Append("bad", event{ID: 1, Name: "ok"}, brokenRecord{}, event{ID: 2, Name: "never"})
	require.Error(t, err)

	// The record before the failure is already on disk.
	dir := sessionDir(t, base, "bad")
	require.Len(t, readLines(t, filepath.Join(dir, "bad_0.json")), 1)
}
