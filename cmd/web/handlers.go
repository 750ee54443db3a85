package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alexrosrgz/GalacticVoyager/internal/scores"
	"github.com/alexrosrgz/GalacticVoyager/internal/world"
)

// maxScoreLimit caps /api/scores?limit=.
const maxScoreLimit = 100

// topScorer is the read side of the leaderboard store.
type topScorer interface {
	Top(ctx context.Context, n int) ([]scores.Score, error)
}

// bodyView is the JSON shape of a catalog body.
type bodyView struct {
	Name         string   `json:"name"`
	Radius       float64  `json:"radius"`
	Distance     float64  `json:"distance"`
	OrbitalSpeed float64  `json:"orbitalSpeed"`
	Eccentricity float64  `json:"eccentricity,omitempty"`
	Parent       string   `json:"parent,omitempty"`
	Emissive     bool     `json:"emissive,omitempty"`
	Rings        bool     `json:"rings,omitempty"`
	Moons        []string `json:"moons,omitempty"`
}

// systemView is the JSON shape of a catalog star system.
type systemView struct {
	Name   string     `json:"name"`
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
	Bodies []bodyView `json:"bodies"`
	Belt   bool       `json:"belt"`
}

func systemViews(configs []world.SystemConfig) []systemView {
	views := make([]systemView, 0, len(configs))
	for _, sc := range configs {
		v := systemView{
			Name:   sc.Name,
			Center: [3]float64{sc.Center.X(), sc.Center.Y(), sc.Center.Z()},
			Radius: sc.Radius,
			Bodies: make([]bodyView, 0, len(sc.Bodies)),
			Belt:   sc.Belt != nil,
		}
		for _, bc := range sc.Bodies {
			bv := bodyView{
				Name:         bc.Name,
				Radius:       bc.Radius,
				Distance:     bc.Distance,
				OrbitalSpeed: bc.OrbitalSpeed,
				Eccentricity: bc.Eccentricity,
				Parent:       bc.Parent,
				Emissive:     bc.Emissive,
				Rings:        bc.Rings,
			}
			for _, m := range bc.Moons {
				bv.Moons = append(bv.Moons, m.Name)
			}
			v.Bodies = append(v.Bodies, bv)
		}
		views = append(views, v)
	}
	return views
}

// newRouter wires the landing page and the JSON API. board may be nil.
func newRouter(board topScorer, sshHost, sshPort string, defaultLimit int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
	}))

	sshCommand := "ssh -t " + sshHost
	if sshPort != "" && sshPort != "22" {
		sshCommand = "ssh -t -p " + sshPort + " " + sshHost
	}
	page := strings.ReplaceAll(htmlPage, "{{.SSHCommand}}", sshCommand)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	systems := systemViews(world.Catalog())

	api := r.Group("/api")
	{
		api.GET("/scores", func(c *gin.Context) {
			if board == nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Leaderboard unavailable"})
				return
			}
			limit := defaultLimit
			if raw := c.Query("limit"); raw != "" {
				n, err := strconv.Atoi(raw)
				if err != nil || n <= 0 {
					c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
					return
				}
				limit = min(n, maxScoreLimit)
			}
			top, err := board.Top(c.Request.Context(), limit)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load scores"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"data": top, "count": len(top)})
		})
		api.GET("/systems", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"data": systems, "count": len(systems)})
		})
		api.GET("/systems/:name", func(c *gin.Context) {
			name := strings.ToLower(c.Param("name"))
			for _, s := range systems {
				if strings.ToLower(s.Name) == name {
					c.JSON(http.StatusOK, gin.H{"data": s})
					return
				}
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "System not found"})
		})
	}
	return r
}
