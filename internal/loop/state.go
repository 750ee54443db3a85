package loop

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexrosrgz/GalacticVoyager/internal/object"
)

// GameState represents the current session phase.
type GameState int

const (
	GameStateMenu     GameState = iota // Title screen, live backdrop
	GameStatePlaying                   // Active gameplay
	GameStateGameOver                  // Player died, waiting for restart
)

func (s GameState) String() string {
	switch s {
	case GameStateMenu:
		return "menu"
	case GameStatePlaying:
		return "playing"
	case GameStateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when an entry point is called from a state
// that does not allow it.
var ErrInvalidTransition = errors.New("invalid state transition")

// Session holds the cross-cutting fields only the Game writes. It is replaced
// wholesale on restart.
type Session struct {
	State        GameState
	Score        int
	MenuAngle    float64 // Backdrop camera orbit angle, radians
	WasBoosting  bool    // Boost flag last frame, for the boost sound edge
	LastBounceAt float64 // Simulation clock at the last bounce effect
	System       string  // Star system the player is in
}

func newSession(state GameState) Session {
	return Session{
		State:        state,
		LastBounceAt: math.Inf(-1),
	}
}

// Start shows the title screen. The host then calls Advance every tick.
func (g *Game) Start() {
	g.session = newSession(GameStateMenu)
	g.hud.Hide()
	g.menu.ShowStart()
	g.logger.Info("game started", "state", g.session.State)
}

// StartGame leaves the title screen and begins play.
func (g *Game) StartGame() error {
	if g.session.State != GameStateMenu {
		return fmt.Errorf("start game from %s: %w", g.session.State, ErrInvalidTransition)
	}
	g.beginPlay()
	return nil
}

// EndGame stops play and shows the final score.
func (g *Game) EndGame() error {
	if g.session.State != GameStatePlaying {
		return fmt.Errorf("end game from %s: %w", g.session.State, ErrInvalidTransition)
	}
	g.session.State = GameStateGameOver
	g.hud.Hide()
	g.menu.ShowGameOver(g.session.Score)
	g.logger.Info("game over", "score", g.session.Score, "clock", g.clock)
	if g.onGameOver != nil {
		g.onGameOver(g.session.Score)
	}
	return nil
}

// Restart clears every enemy and projectile, resets the ship and score, and
// begins a fresh round.
func (g *Game) Restart() error {
	if g.session.State != GameStatePlaying && g.session.State != GameStateGameOver {
		return fmt.Errorf("restart from %s: %w", g.session.State, ErrInvalidTransition)
	}
	g.enemies.Clear()
	g.projectiles.Clear()
	g.enemies.SetSpawnTimer(object.InitialSpawnDelay)
	g.player.Reset()

	angle := g.session.MenuAngle
	g.session = newSession(GameStatePlaying)
	g.session.MenuAngle = angle
	g.beginPlay()
	return nil
}

func (g *Game) beginPlay() {
	g.session.State = GameStatePlaying
	g.session.Score = 0
	g.menu.HideAll()
	g.hud.Show()
	g.logger.Info("round started")
}
