package client

import (
	"time"

	"github.com/alexrosrgz/GalacticVoyager/internal/loop"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/server"
)

// ClientState holds the host-side state around one game: connection
// lifetime, lobby data and screen bookkeeping.
type ClientState struct {
	Running       bool                   // Client loop running
	TopScores     []server.TopScoreEntry // Latest leaderboard from the lobby
	delta         time.Duration          // Frame delta time
	shuttingDown  bool                   // Server announced shutdown
	shutdownTimer float64                // Countdown before auto-disconnect on shutdown
	restartDelay  float64                // Seconds left before restart input is accepted
	isInactive    bool                   // Whether the client is in inactive warning state

	// Previous frame, for full clears on screen changes.
	prevGameState loop.GameState
	prevShutdown  bool
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running:       true,
		prevGameState: -1,
	}
}
