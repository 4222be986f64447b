package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "advent.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	first, err := s.Record(Run{Day: 1, Part: 1, Name: "captcha", Result: "1341", Elapsed: time.Millisecond})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Created.IsZero())

	second, err := s.Record(Run{Day: 1, Part: 2, Name: "captcha", Result: "1348", Elapsed: 2 * time.Millisecond})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	runs, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "captcha", runs[0].Name)
	assert.Equal(t, time.Millisecond, runs[1].Elapsed)
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		_, err := s.Record(Run{Day: 2, Part: 1, Name: "checksum", Result: "x"})
		require.NoError(t, err)
	}

	runs, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestFastest(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Record(Run{Day: 5, Part: 1, Name: "maze", Result: "42", Elapsed: 8 * time.Millisecond})
	require.NoError(t, err)
	_, err = s.Record(Run{Day: 5, Part: 1, Name: "maze", Result: "42", Elapsed: 3 * time.Millisecond})
	require.NoError(t, err)

	fastest, err := s.Fastest(5, 1)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Millisecond, fastest.Elapsed)
}

func TestFastestNoRuns(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Fastest(9, 1)
	assert.ErrorIs(t, err, ErrNoRuns)
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "advent.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}
