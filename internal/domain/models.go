package domain

import (
	"strings"
	"time"
)

// MatchQuery is the pair of team names sent to the prediction service.
type MatchQuery struct {
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
}

// NewMatchQuery trims both names. ok is false when either is empty after trimming.
func NewMatchQuery(team1, team2 string) (q MatchQuery, ok bool) {
	q = MatchQuery{
		Team1: strings.TrimSpace(team1),
		Team2: strings.TrimSpace(team2),
	}
	return q, q.Team1 != "" && q.Team2 != ""
}

func (q MatchQuery) String() string {
	return q.Team1 + " vs " + q.Team2
}

type PredictionResult struct {
	Prediction     Prediction `json:"prediction"`
	Recommendation string     `json:"recommendation"`
	KeyStats       KeyStats   `json:"key_stats"`
}

// Prediction holds percentages (0-100) exactly as supplied by the service.
// They are not required to sum to 100.
type Prediction struct {
	Team1           TeamOdds `json:"team1"`
	Team2           TeamOdds `json:"team2"`
	DrawProbability float64  `json:"draw_probability"`
}

type TeamOdds struct {
	Name           string  `json:"name,omitempty"`
	WinProbability float64 `json:"win_probability"`
}

type KeyStats struct {
	Team1 TeamStats `json:"team1"`
	Team2 TeamStats `json:"team2"`
}

type TeamStats struct {
	Form            []string `json:"form"`
	GoalsPerMatch   float64  `json:"goals_per_match"`
	Possession      float64  `json:"possession"`
	CornersPerMatch float64  `json:"corners_per_match"`
}

type Author string

const (
	AuthorUser Author = "user"
	AuthorBot  Author = "bot"
)

// Message is one transcript entry.
type Message struct {
	ID        string
	Author    Author
	Text      string
	CreatedAt time.Time
}
