package asset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wait[T any](t *testing.T, h *Handle[T]) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("load did not finish")
	}
}

func TestPlaceholderUntilLoaded(t *testing.T) {
	release := make(chan struct{})
	h := Load(context.Background(), "ship", "placeholder", func(context.Context) (string, error) {
		<-release
		return "final", nil
	}, nil)

	assert.Equal(t, "placeholder", h.Get())
	assert.False(t, h.Loaded())

	close(release)
	wait(t, h)

	assert.Equal(t, "final", h.Get())
	assert.True(t, h.Loaded())
}

func TestFailedLoadKeepsPlaceholder(t *testing.T) {
	h := Load(context.Background(), "ship", 7, func(context.Context) (int, error) {
		return 0, errors.New("missing file")
	}, nil)
	wait(t, h)

	assert.Equal(t, 7, h.Get())
	assert.False(t, h.Loaded())
}

func TestLoadSeesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := Load(ctx, "ship", "placeholder", func(ctx context.Context) (string, error) {
		return "", ctx.Err()
	}, nil)
	wait(t, h)

	require.False(t, h.Loaded())
	assert.Equal(t, "placeholder", h.Get())
}
