package leaderboard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func TestNormalizeName(t *testing.T) {
	got, err := NormalizeName("  ace  ")
	require.NoError(t, err)
	assert.Equal(t, "ace", got)

	got, err = NormalizeName("abcdefghijklmnopqrstu")
	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmno", got)

	got, err = NormalizeName("ЖжЖжЖжЖжЖжЖжЖжЖжЖж")
	require.NoError(t, err)
	assert.Equal(t, 15, len([]rune(got)))

	_, err = NormalizeName("   ")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		e, err := NewEntry(fmt.Sprintf("p%d", i), i*100, i+1, day.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		require.NoError(t, s.Submit(ctx, e))
	}
	tie, err := NewEntry("late", 1100, 3, day.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, s.Submit(ctx, tie))

	assert.ErrorIs(t, s.Submit(ctx, Entry{Name: " "}), ErrInvalidName)

	best, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, best, 10)
	assert.Equal(t, "p11", best[0].Name)
	assert.Equal(t, "late", best[1].Name, "equal scores keep submission order")
	for i := 1; i < len(best); i++ {
		assert.GreaterOrEqual(t, best[i-1].Score, best[i].Score)
	}

	all, err := s.Top(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 13)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.msgpack")
	storeContract(t, NewFileStore(path))

	reopened := NewFileStore(path)
	best, err := reopened.Top(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, best, 1)
	assert.Equal(t, 1100, best[0].Score)
	assert.True(t, best[0].CreatedAt.Equal(day.Add(11*time.Minute)))
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "none.msgpack"))
	best, err := s.Top(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, best)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.msgpack")
	require.NoError(t, os.WriteFile(path, []byte{0xc1}, 0o600))

	_, err := NewFileStore(path).Top(context.Background(), 10)
	assert.Error(t, err)
}

func TestFileStore_Capacity(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "cap.msgpack"))
	s.capacity = 3
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Submit(ctx, Entry{Name: "x", Score: i, CreatedAt: day}))
	}
	all, err := s.Top(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 4, all[0].Score)
}

func TestFileStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewFileStore(filepath.Join(t.TempDir(), "c.msgpack"))
	assert.ErrorIs(t, s.Submit(ctx, Entry{Name: "x"}), context.Canceled)
}
