package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/alexrosrgz/GalacticVoyager/internal/config"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/client"
	"github.com/alexrosrgz/GalacticVoyager/internal/loop/server"
	"github.com/alexrosrgz/GalacticVoyager/internal/scores"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Load("."); err != nil {
		return err
	}
	settings, err := config.Current()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if settings.Log.File != "" {
		f, err := os.OpenFile(settings.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game", settings.Log.Level)

	store, err := scores.Open(settings.Scores.Path)
	if err != nil {
		logger.Warn("leaderboard unavailable, scores stay in memory", "err", err)
	} else {
		defer store.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	lobby := server.NewServer(scoreStore(store), settings.Scores.Top, logger)
	go lobby.Run(ctx)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	c, err := client.NewClient(lobby, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: pilotName(),
		Logger:   logger,
		Seed:     settings.Game.Seed,
	})
	if err != nil {
		return err
	}
	return c.Run()
}

// scoreStore avoids handing the lobby a typed nil.
func scoreStore(s *scores.Store) server.ScoreStore {
	if s == nil {
		return nil
	}
	return s
}

func pilotName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "pilot"
}

