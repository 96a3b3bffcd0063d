package dto

import "time"

// SaveScoreRequest records a finished game on the leaderboard.
type SaveScoreRequest struct {
	Username string `json:"username" example:"ada"`
	Score    *int   `json:"score" example:"7"`
	Topic    string `json:"topic,omitempty" example:"Photosynthesis"`
}

type SaveScoreResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ScoreResponse is one leaderboard row.
type ScoreResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	Topic     string    `json:"topic"`
	Timestamp time.Time `json:"timestamp"`
}

// LeaderboardResponse lists entries best score first.
// @Description Leaderboard
type LeaderboardResponse struct {
	Leaderboard []ScoreResponse `json:"leaderboard"`
}

type ClearLeaderboardResponse struct {
	Message string `json:"message"`
	Removed int64  `json:"removed"`
}

// HealthResponse reports the reachability of each backing service.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
