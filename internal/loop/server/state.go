package server

import (
	"time"

	"github.com/alexrosrgz/GalacticVoyager/internal/scores"
)

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	At       time.Time
}

// LobbySnapshot is an immutable view of the lobby for rendering.
type LobbySnapshot struct {
	Players   int
	TopScores []TopScoreEntry // Best runs, highest first
}

func entriesFromScores(rows []scores.Score) []TopScoreEntry {
	entries := make([]TopScoreEntry, len(rows))
	for i, r := range rows {
		entries[i] = TopScoreEntry{Username: r.Username, Score: r.Points, At: r.CreatedAt}
	}
	return entries
}

// insertTopScore places e in a list sorted by score (descending, earlier
// entries win ties) and trims it to limit.
func insertTopScore(list []TopScoreEntry, e TopScoreEntry, limit int) []TopScoreEntry {
	i := 0
	for i < len(list) && list[i].Score >= e.Score {
		i++
	}
	if i >= limit {
		return list
	}
	list = append(list, TopScoreEntry{})
	copy(list[i+1:], list[i:])
	list[i] = e
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}
