package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/scriptframe/pkg/log"
)

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case p, ok := <-ch:
		require.True(t, ok, "channel closed before delivery")
		return p
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch delivery")
		return ""
	}
}

func TestWatcherDeliversMatchingFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, DefaultConfig(), log.NewNoop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := w.Paths(ctx)

	// A non-matching file first: it must never be delivered.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	target := filepath.Join(dir, "drop_0.json")
	require.NoError(t, os.WriteFile(target, []byte(`{"id":1}`+"\n"), 0o644))

	require.Equal(t, target, receive(t, ch))
}

func TestWatcherClosesOnCancel(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, DefaultConfig(), log.NewNoop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch := w.Paths(ctx)
	cancel()

	select {
	case _, ok := <-ch:
		require.False(t, ok, "channel should close after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), DefaultConfig(), log.NewNoop())
	require.Error(t, err)
}

func TestWatcherBadPattern(t *testing.T) {
	_, err := New(t.TempDir(), Config{Pattern: "["}, log.NewNoop())
	require.Error(t, err)
}
