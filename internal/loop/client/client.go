// Package client hosts one pilot in a terminal: it owns a loop.Game, feeds
// it keyboard input, renders the scene with half-block graphics and talks
// to the lobby server.
package client

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/alexrosrgz/GalacticVoyager/internal/asset"
	"github.com/alexrosrgz/GalacticVoyager/internal/draw"
	"github.com/alexrosrgz/GalacticVoyager/internal/input"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/config"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/server"
	"github.com/alexrosrgz/GalacticVoyager/internal/physics"
	"github.com/alexrosrgz/GalacticVoyager/internal/world"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	game         *loop.Game
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	input        *input.State
	lastInput    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger

	hud    *termHUD
	radar  *radar
	menu   *termMenu
	audio  *bellAudio
	camera *chaseCamera
	glyphs *asset.Handle[GlyphSet]

	stars   []mgl64.Vec3 // Backdrop star directions
	sprites []sprite     // Reused draw list
	cancel  context.CancelFunc
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Logger       *log.Logger
	Seed         int64 // 0 picks a time-based seed
	Systems      []world.SystemConfig

	// GlyphLoader replaces the embedded overlay glyph set.
	GlyphLoader asset.LoadFunc[GlyphSet]
}

// NewClient creates a new client connected to the given server.
func NewClient(gs server.GameServer, r io.Reader, w io.Writer, opts ClientOptions) (*Client, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("user", opts.Username)
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	stream := input.StartStream(r)
	c := &Client{
		server:       gs,
		state:        NewClientState(),
		writer:       w,
		inputStream:  stream,
		input:        input.NewState(stream),
		lastInput:    time.Now(),
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger,
		hud:          &termHUD{},
		radar:        &radar{},
		menu:         &termMenu{},
		audio:        &bellAudio{logger: logger},
		camera:       newChaseCamera(rng),
		stars:        makeStarfield(rng, config.StarfieldSize),
	}

	game, err := loop.NewGame(loop.Options{
		Input:      c.input,
		Audio:      c.audio,
		HUD:        c.hud,
		Minimap:    c.radar,
		Menu:       c.menu,
		Camera:     c.camera,
		Logger:     logger,
		Rand:       rng,
		Systems:    opts.Systems,
		OnGameOver: c.onGameOver,
	})
	if err != nil {
		return nil, err
	}
	c.game = game

	loader := opts.GlyphLoader
	if loader == nil {
		loader = loadGlyphs
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.glyphs = asset.Load(ctx, "glyphs", asciiGlyphs, loader, logger)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	c.canvas = draw.NewCanvas(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter = draw.NewChunkWriter(w, offsetCol, offsetRow)

	c.handle = gs.RegisterClient(opts.Username)
	return c, nil
}

func makeStarfield(rng *rand.Rand, n int) []mgl64.Vec3 {
	stars := make([]mgl64.Vec3, n)
	for i := range stars {
		stars[i] = physics.RandomPointOnSphere(rng, 1)
	}
	return stars
}

// Game returns the simulation this client hosts.
func (c *Client) Game() *loop.Game {
	return c.game
}

// Run starts the client loop. Blocks until the client disconnects or server stops.
func (c *Client) Run() error {
	defer c.cancel()
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.game.Start()
	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput(frameStart)
		c.processServerEvents()
		c.updateScreen()

		if c.state.shuttingDown {
			c.updateShutdownState()
		} else {
			c.updateGame()
		}

		if err := c.drawFrame(); err != nil {
			c.server.UnregisterClient(c.handle.ID)
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	c.server.UnregisterClient(c.handle.ID)

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads the keyboard and handles host-level keys.
func (c *Client) processInput(now time.Time) {
	// Checked before draining so bytes sent before EOF are still applied.
	closed := c.inputStream.Closed()
	c.input.Poll(now)

	if len(c.input.Pressed) > 0 {
		c.lastInput = now
		c.state.isInactive = false
	} else if now.Sub(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.state.Running = false
	} else if now.Sub(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.input.Quit || closed {
		c.state.Running = false
	}

	if c.state.shuttingDown || !c.pressedConfirm() {
		return
	}
	switch c.game.State() {
	case loop.GameStateMenu:
		c.trigger()
	case loop.GameStateGameOver:
		if c.state.restartDelay <= 0 {
			c.trigger()
		}
	}
}

// pressedConfirm reports whether Enter or a fresh space was typed this frame.
func (c *Client) pressedConfirm() bool {
	if c.input.Enter {
		return true
	}
	for _, b := range c.input.Pressed {
		if b == ' ' {
			return true
		}
	}
	return false
}

func (c *Client) trigger() {
	if c.menu.Trigger() {
		c.input.Reset()
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventTopScores:
				c.state.TopScores = event.TopScores
			case server.EventServerShutdown:
				c.state.shuttingDown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > config.MaxTermWidth {
		renderWidth = config.MaxTermWidth
	}
	if renderHeight > config.MaxTermHeight {
		renderHeight = config.MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateGame advances the simulation. Long stalls (a suspended terminal,
// a slow link) are simulated as a single short frame.
func (c *Client) updateGame() {
	delta := c.state.delta
	if delta > config.MaxFrameDelta {
		delta = config.MaxFrameDelta
	}
	if c.state.restartDelay > 0 {
		c.state.restartDelay -= delta.Seconds()
	}
	c.game.Advance(delta)
}

// onGameOver submits the final score to the lobby.
func (c *Client) onGameOver(score int) {
	c.state.restartDelay = config.RestartDelaySeconds
	c.logger.Info("round over", "score", score)
	c.server.SubmitScore(c.handle.ID, score)
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
