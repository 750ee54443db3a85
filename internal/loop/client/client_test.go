package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexrosrgz/GalacticVoyager/internal/loop"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/server"
	"github.com/alexrosrgz/GalacticVoyager/internal/world"
)

type fakeServer struct {
	mu           sync.Mutex
	handle       *server.ClientHandle
	unregistered []int
	scores       []int
}

func (f *fakeServer) RegisterClient(username string) *server.ClientHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handle = &server.ClientHandle{ID: 7, Username: username, EventsCh: make(chan server.ClientEvent, 4)}
	return f.handle
}

func (f *fakeServer) UnregisterClient(clientID int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unregistered = append(f.unregistered, clientID)
}

func (f *fakeServer) SubmitScore(_ int, score int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores = append(f.scores, score)
}

func (f *fakeServer) GetSnapshot() *server.LobbySnapshot {
	return &server.LobbySnapshot{Players: 1}
}

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

// emptySky keeps tests free of bodies near the spawn point.
func emptySky() []world.SystemConfig {
	return []world.SystemConfig{{Name: "Void", Radius: 100}}
}

func newTestClient(t *testing.T, in io.Reader, out io.Writer) (*Client, *fakeServer) {
	t.Helper()
	fs := &fakeServer{}
	c, err := NewClient(fs, in, out, ClientOptions{
		TermSizeFunc: fixedSize(100, 40),
		Username:     "ada",
		Seed:         42,
		Systems:      emptySky(),
	})
	require.NoError(t, err)
	return c, fs
}

func runWithTimeout(t *testing.T, c *Client) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- c.Run() }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("client did not stop")
	}
	return nil
}

func TestRunQuitsOnQ(t *testing.T) {
	var out bytes.Buffer
	c, fs := newTestClient(t, strings.NewReader("q"), &out)

	require.NoError(t, runWithTimeout(t, c))

	assert.Equal(t, []int{7}, fs.unregistered)
	assert.Equal(t, loop.GameStateMenu, c.Game().State())
	assert.Contains(t, out.String(), "\033[?25h", "cursor restored")
}

func TestEnterLaunchesRound(t *testing.T) {
	var out bytes.Buffer
	c, _ := newTestClient(t, strings.NewReader("\r"), &out)

	require.NoError(t, runWithTimeout(t, c))

	assert.Equal(t, loop.GameStatePlaying, c.Game().State())
}

func TestServerEvents(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer
	c, fs := newTestClient(t, pr, &out)

	fs.handle.EventsCh <- server.ClientEvent{
		Type:      server.EventTopScores,
		TopScores: []server.TopScoreEntry{{Username: "bob", Score: 900}},
	}
	fs.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	c.processServerEvents()

	require.Len(t, c.state.TopScores, 1)
	assert.True(t, c.state.shuttingDown)

	c.state.delta = 11 * time.Second
	c.updateShutdownState()
	assert.False(t, c.state.Running)
}

func TestClosedEventsStopClient(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c, fs := newTestClient(t, pr, io.Discard)

	close(fs.handle.EventsCh)
	c.processServerEvents()
	assert.False(t, c.state.Running)
}

func TestGameOverSubmitsScore(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c, fs := newTestClient(t, pr, io.Discard)

	g := c.Game()
	g.Start()
	require.NoError(t, g.StartGame())
	g.Player().TakeDamage(1000)
	g.Advance(16 * time.Millisecond)

	require.Equal(t, loop.GameStateGameOver, g.State())
	assert.Equal(t, []int{0}, fs.scores)
	assert.Greater(t, c.state.restartDelay, 0.0)
	assert.Equal(t, menuGameOver, c.menu.screen)
}

func TestDrawFrameRendersEveryScreen(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer
	c, _ := newTestClient(t, pr, &out)
	g := c.Game()
	g.Start()

	require.NoError(t, c.drawFrame())
	assert.Contains(t, out.String(), "Controls")

	require.NoError(t, g.StartGame())
	g.Enemies().SpawnAt(mgl64.Vec3{350, 20, -100})
	g.Advance(16 * time.Millisecond)
	out.Reset()
	require.NoError(t, c.drawFrame())
	assert.Contains(t, out.String(), "HULL")
	assert.Contains(t, out.String(), "Pilots: 1")

	c.state.isInactive = true
	out.Reset()
	require.NoError(t, c.drawFrame())
	assert.Contains(t, out.String(), "INACTIVITY WARNING")
}

func TestGlyphLoaderFailureKeepsASCII(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c, err := NewClient(&fakeServer{}, pr, io.Discard, ClientOptions{
		TermSizeFunc: fixedSize(80, 24),
		Systems:      emptySky(),
		GlyphLoader: func(context.Context) (GlyphSet, error) {
			return GlyphSet{}, errors.New("no font")
		},
	})
	require.NoError(t, err)

	<-c.glyphs.Done()
	assert.Equal(t, asciiGlyphs, c.glyphs.Get())
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := clampTermSize(80, 24)
	assert.Equal(t, []int{80, 24, 0, 0}, []int{w, h, col, row})

	w, h, col, row = clampTermSize(300, 100)
	assert.Equal(t, 200, w)
	assert.Equal(t, 60, h)
	assert.Equal(t, 50, col)
	assert.Equal(t, 20, row)
}
