package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/alexrosrgz/GalacticVoyager/internal/config"
	"github.com/alexrosrgz/GalacticVoyager/internal/draw"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/client"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/server"
	"github.com/alexrosrgz/GalacticVoyager/internal/scores"
)

func main() {
	if err := config.Load("."); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	settings, err := config.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr, "ssh", settings.Log.Level)
	logger.Info("SSH config", "host", settings.SSH.Host, "port", settings.SSH.Port, "hostKeyPath", settings.SSH.HostKeyPath)

	// Shared lobby: every session plays its own game but shares the leaderboard.
	var store server.ScoreStore
	if s, err := scores.Open(settings.Scores.Path); err != nil {
		logger.Warn("leaderboard unavailable, scores stay in memory", "err", err)
	} else {
		defer s.Close()
		store = s
	}
	ctx, cancelLobby := context.WithCancel(context.Background())
	lobby := server.NewServer(store, settings.Scores.Top, logger.WithPrefix("lobby"))
	go lobby.Run(ctx)
	logger.Info("Lobby started")

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSH.Host, settings.SSH.Port)),
		wish.WithMiddleware(
			gameMiddleware(lobby, settings.Game.Seed, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(settings.SSH.Host, settings.SSH.Port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	// Notify pilots and wait for them to disconnect
	lobby.Shutdown(15 * time.Second)
	cancelLobby()
	logger.Info("Lobby stopped")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}

// gameMiddleware runs a game client for each SSH session.
func gameMiddleware(lobby server.GameServer, seed int64, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			logger.Info("New game session", "user", sess.User(), "term", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			c, err := client.NewClient(lobby, bufio.NewReader(sess), sess, client.ClientOptions{
				TermSizeFunc: sizeTracker.getSize,
				Username:     sess.User(),
				Logger:       logger,
				Seed:         seed,
			})
			if err != nil {
				logger.Error("Game setup failed", "user", sess.User(), "err", err)
				return
			}
			if err := c.Run(); err != nil {
				logger.Error("Game error", "user", sess.User(), "err", err)
			}

			logger.Info("Session ended", "user", sess.User())
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
