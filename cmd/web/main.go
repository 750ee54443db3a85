package main

import (
	_ "embed"
	"fmt"
	"net"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/alexrosrgz/GalacticVoyager/internal/config"
	"github.com/alexrosrgz/GalacticVoyager/internal/scores"
)

//go:embed index.html
var htmlPage string

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
	logger := config.NewLogger(os.Stderr, "web", settings.Log.Level)

	var board topScorer
	if s, err := scores.Open(settings.Scores.Path); err != nil {
		logger.Warn("leaderboard unavailable", "err", err)
	} else {
		defer s.Close()
		board = s
	}

	gin.SetMode(gin.ReleaseMode)
	r := newRouter(board, settings.Web.SSHDisplayHost, settings.SSH.Port, settings.Scores.Top)

	addr := net.JoinHostPort(settings.Web.Host, settings.Web.Port)
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := r.Run(addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
