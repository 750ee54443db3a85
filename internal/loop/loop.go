// Package loop runs the simulation: the session state machine, the per-frame
// update order and collision resolution.
package loop

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alexrosrgz/GalacticVoyager/internal/object"
	"github.com/alexrosrgz/GalacticVoyager/internal/world"
)

// Options wires a Game to its collaborators. Nil collaborators are replaced
// with no-ops.
type Options struct {
	Input   object.Input
	Audio   Audio
	HUD     HUD
	Minimap Minimap
	Menu    Menu
	Camera  Camera
	Logger  *log.Logger
	Rand    *rand.Rand
	Systems []world.SystemConfig // Defaults to world.Catalog()

	// OnGameOver is called once per round with the final score.
	OnGameOver func(score int)
}

// Game owns the player, the enemy and projectile managers and the star
// systems, and advances them one frame at a time.
type Game struct {
	player      *object.Player
	enemies     *object.EnemyManager
	projectiles *object.ProjectileManager
	solar       *world.SolarSystem

	input   object.Input
	audio   Audio
	hud     HUD
	minimap Minimap
	menu    Menu
	camera  Camera
	logger  *log.Logger

	onGameOver func(score int)

	session Session
	clock   float64 // Simulated seconds since creation
	bodies  []world.BodyInfo
}

// NewGame builds a game in the menu state.
func NewGame(opts Options) (*Game, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	systems := opts.Systems
	if systems == nil {
		systems = world.Catalog()
	}
	solar, err := world.NewSolarSystem(systems, rng)
	if err != nil {
		return nil, fmt.Errorf("build star systems: %w", err)
	}

	g := &Game{
		player:      object.NewPlayer(),
		enemies:     object.NewEnemyManager(rng),
		projectiles: object.NewProjectileManager(),
		solar:       solar,
		input:       opts.Input,
		audio:       opts.Audio,
		hud:         opts.HUD,
		minimap:     opts.Minimap,
		menu:        opts.Menu,
		camera:      opts.Camera,
		logger:      opts.Logger,
		onGameOver:  opts.OnGameOver,
		session:     newSession(GameStateMenu),
	}
	if g.input == nil {
		g.input = nopInput{}
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.hud == nil {
		g.hud = nopHUD{}
	}
	if g.minimap == nil {
		g.minimap = nopMinimap{}
	}
	if g.menu == nil {
		g.menu = nopMenu{}
	}
	if g.camera == nil {
		g.camera = nopCamera{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.menu.OnStart(func() {
		if err := g.StartGame(); err != nil {
			g.logger.Warn("start ignored", "err", err)
		}
	})
	g.menu.OnRestart(func() {
		if err := g.Restart(); err != nil {
			g.logger.Warn("restart ignored", "err", err)
		}
	})
	return g, nil
}

// Advance runs one frame of delta simulated time. Negative deltas count as zero.
func (g *Game) Advance(delta time.Duration) {
	dt := delta.Seconds()
	if dt < 0 {
		dt = 0
	}
	g.clock += dt

	switch g.session.State {
	case GameStateMenu:
		g.updateMenu(dt)
	case GameStatePlaying:
		g.updatePlaying(dt)
	case GameStateGameOver:
		g.updateGameOver(dt)
	}
}

// State returns the current session phase.
func (g *Game) State() GameState { return g.session.State }

// Score returns the current round's score.
func (g *Game) Score() int { return g.session.Score }

// Session returns a copy of the session fields.
func (g *Game) Session() Session { return g.session }

// Clock returns the simulated seconds since the game was created.
func (g *Game) Clock() float64 { return g.clock }

// Player returns the player's ship.
func (g *Game) Player() *object.Player { return g.player }

// Enemies returns the enemy manager.
func (g *Game) Enemies() *object.EnemyManager { return g.enemies }

// Projectiles returns the projectile manager.
func (g *Game) Projectiles() *object.ProjectileManager { return g.projectiles }

// SolarSystem returns the star systems.
func (g *Game) SolarSystem() *world.SolarSystem { return g.solar }
