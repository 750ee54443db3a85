package server

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alexrosrgz/GalacticVoyager/internal/loop/config"
	"github.com/alexrosrgz/GalacticVoyager/internal/scores"
)

// GameServer is the interface clients use to communicate with the lobby.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	SubmitScore(clientID int, score int)
	GetSnapshot() *LobbySnapshot
}

// ScoreStore persists finished runs. *scores.Store implements it.
type ScoreStore interface {
	Record(ctx context.Context, username string, points int) error
	Top(ctx context.Context, n int) ([]scores.Score, error)
}

// Server is the lobby shared by every connected terminal: it tracks clients,
// keeps the leaderboard and broadcasts shutdown.
type Server struct {
	snapshot     atomic.Pointer[LobbySnapshot]
	clients      map[int]*ClientHandle
	nextClientID int
	registerCh   chan *ClientHandle
	unregisterCh chan int
	scoreCh      chan scoreSubmission
	mu           sync.RWMutex

	store     ScoreStore
	topN      int
	topScores []TopScoreEntry // Owned by the Run goroutine
	logger    *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client (leaderboard, shutdown)
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type      ClientEventType
	TopScores []TopScoreEntry // For EventTopScores
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventTopScores ClientEventType = iota
	EventServerShutdown
)

type scoreSubmission struct {
	clientID int
	score    int
}

// NewServer creates a lobby. store may be nil, in which case the leaderboard
// lives in memory only. topN <= 0 selects config.TopScoresShown.
func NewServer(store ScoreStore, topN int, logger *log.Logger) *Server {
	if topN <= 0 {
		topN = config.TopScoresShown
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		registerCh:   make(chan *ClientHandle, 16),
		unregisterCh: make(chan int, 16),
		scoreCh:      make(chan scoreSubmission, 64),
		store:        store,
		topN:         topN,
		logger:       logger,
	}
	s.snapshot.Store(&LobbySnapshot{TopScores: []TopScoreEntry{}})
	return s
}

// Run starts the server loop. Blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) {
	s.loadTopScores(ctx)
	s.publish()

	for {
		select {
		case <-ctx.Done():
			return
		case handle := <-s.registerCh:
			s.mu.Lock()
			s.clients[handle.ID] = handle
			s.mu.Unlock()
			s.logger.Debug("client joined", "id", handle.ID, "user", handle.Username)
			s.send(handle, ClientEvent{Type: EventTopScores, TopScores: s.topScores})
			s.publish()
		case clientID := <-s.unregisterCh:
			s.mu.Lock()
			if handle, ok := s.clients[clientID]; ok {
				close(handle.EventsCh)
				delete(s.clients, clientID)
			}
			s.mu.Unlock()
			s.logger.Debug("client left", "id", clientID)
			s.publish()
		case sub := <-s.scoreCh:
			if s.recordScore(ctx, sub) {
				s.publish()
				s.broadcast(ClientEvent{Type: EventTopScores, TopScores: s.topScores})
			}
		}
	}
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
// The caller should cancel the server context after Shutdown returns.
func (s *Server) Shutdown(timeout time.Duration) {
	s.broadcast(ClientEvent{Type: EventServerShutdown})

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			s.mu.RLock()
			remaining := len(s.clients)
			s.mu.RUnlock()
			if remaining == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	id := s.nextClientID
	s.nextClientID++
	s.mu.Unlock()

	handle := &ClientHandle{
		ID:       id,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}

	s.registerCh <- handle
	return handle
}

// UnregisterClient removes a client from the server.
func (s *Server) UnregisterClient(clientID int) {
	s.unregisterCh <- clientID
}

// SubmitScore records a finished run for a client. Non-positive scores are
// ignored.
func (s *Server) SubmitScore(clientID int, score int) {
	if score <= 0 {
		return
	}
	select {
	case s.scoreCh <- scoreSubmission{clientID: clientID, score: score}:
	default:
		s.logger.Warn("score queue full, dropping", "id", clientID, "score", score)
	}
}

// GetSnapshot returns the current lobby snapshot.
func (s *Server) GetSnapshot() *LobbySnapshot {
	return s.snapshot.Load()
}

func (s *Server) loadTopScores(ctx context.Context) {
	if s.store == nil {
		return
	}
	rows, err := s.store.Top(ctx, s.topN)
	if err != nil {
		s.logger.Warn("failed to load leaderboard", "err", err)
		return
	}
	s.topScores = entriesFromScores(rows)
}

// recordScore persists a run and refreshes the leaderboard. Reports whether
// the leaderboard may have changed.
func (s *Server) recordScore(ctx context.Context, sub scoreSubmission) bool {
	s.mu.RLock()
	handle, ok := s.clients[sub.clientID]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	entry := TopScoreEntry{Username: handle.Username, Score: sub.score, At: time.Now()}
	s.logger.Info("score submitted", "user", entry.Username, "score", entry.Score)

	if s.store != nil {
		if err := s.store.Record(ctx, entry.Username, entry.Score); err != nil {
			s.logger.Warn("failed to persist score", "user", entry.Username, "err", err)
		} else if rows, err := s.store.Top(ctx, s.topN); err != nil {
			s.logger.Warn("failed to reload leaderboard", "err", err)
		} else {
			s.topScores = entriesFromScores(rows)
			return true
		}
	}

	s.topScores = insertTopScore(s.topScores, entry, s.topN)
	return true
}

func (s *Server) publish() {
	s.mu.RLock()
	players := len(s.clients)
	s.mu.RUnlock()

	top := make([]TopScoreEntry, len(s.topScores))
	copy(top, s.topScores)
	s.snapshot.Store(&LobbySnapshot{Players: players, TopScores: top})
}

func (s *Server) broadcast(ev ClientEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, handle := range s.clients {
		s.send(handle, ev)
	}
}

func (s *Server) send(handle *ClientHandle, ev ClientEvent) {
	if ev.TopScores != nil {
		top := make([]TopScoreEntry, len(ev.TopScores))
		copy(top, ev.TopScores)
		ev.TopScores = top
	}
	select {
	case handle.EventsCh <- ev:
	default:
	}
}
