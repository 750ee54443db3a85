package scores

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestTopOrdersByPointsThenAge(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, "ada", 300))
	require.NoError(t, s.Record(ctx, "bob", 500))
	require.NoError(t, s.Record(ctx, "cyd", 300))
	require.NoError(t, s.Record(ctx, "dee", 100))

	top, err := s.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "bob", top[0].Username)
	assert.Equal(t, 500, top[0].Points)
	assert.Equal(t, "ada", top[1].Username)
	assert.Equal(t, "cyd", top[2].Username)
}

func TestTopWithNonPositiveLimit(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Record(context.Background(), "ada", 100))

	top, err := s.Top(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestRecordRejectsEmptyUsername(t *testing.T) {
	s := openTestStore(t)
	err := s.Record(context.Background(), "   ", 100)
	assert.ErrorIs(t, err, ErrEmptyUsername)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecordTruncatesLongNames(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Record(context.Background(), strings.Repeat("x", 50), 10))

	top, err := s.Top(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Len(t, top[0].Username, MaxUsernameLength)
}

func TestBest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	best, err := s.Best(ctx, "ada")
	require.NoError(t, err)
	assert.Zero(t, best)

	require.NoError(t, s.Record(ctx, "ada", 200))
	require.NoError(t, s.Record(ctx, "ada", 700))
	require.NoError(t, s.Record(ctx, "bob", 900))

	best, err = s.Best(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, 700, best)
}
