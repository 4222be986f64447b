package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestWatcher(t *testing.T, debounce time.Duration) (string, chan struct{}) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "day01.txt")
	require.NoError(t, os.WriteFile(path, []byte("1122\n"), 0644))

	changes := make(chan struct{}, 16)
	w, err := New(path, debounce, zaptest.NewLogger(t), func() {
		changes <- struct{}{}
	})
	require.NoError(t, err)
	w.Start(context.Background())
	t.Cleanup(w.Stop)
	return path, changes
}

func TestWatcherFiresOnWrite(t *testing.T) {
	path, changes := newTestWatcher(t, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("1212\n"), 0644))

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification after write")
	}
}

func TestWatcherFiresOnReplace(t *testing.T) {
	path, changes := newTestWatcher(t, 20*time.Millisecond)

	// Save the way editors do: write a sibling, rename it over the
	// target.
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte("9912\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification after rename")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	path, changes := newTestWatcher(t, 20*time.Millisecond)

	sibling := filepath.Join(filepath.Dir(path), "day02.txt")
	require.NoError(t, os.WriteFile(sibling, []byte("5 1 9 5\n"), 0644))

	select {
	case <-changes:
		t.Fatal("notified for a sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	path, changes := newTestWatcher(t, 100*time.Millisecond)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("1212\n"), 0644))
	}

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification after burst")
	}
	// The burst settles into a single callback.
	select {
	case <-changes:
		t.Fatal("burst produced more than one notification")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day01.txt")
	require.NoError(t, os.WriteFile(path, []byte("1122\n"), 0644))

	w, err := New(path, time.Millisecond, zaptest.NewLogger(t), func() {})
	require.NoError(t, err)
	w.Start(context.Background())
	w.Stop()
	w.Stop()
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "day01.txt"), time.Millisecond, zaptest.NewLogger(t), func() {})
	assert.Error(t, err)
}
