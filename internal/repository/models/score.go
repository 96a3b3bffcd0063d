package models

import (
	"database/sql"
	"time"
)

// Score is the database model for a leaderboard entry.
type Score struct {
	ID        string         `db:"ID"`       // ULID
	Username  string         `db:"USERNAME"` // Display name, not an account
	Score     int            `db:"SCORE"`
	Topic     sql.NullString `db:"TOPIC"` // NULL when the quiz had no topic
	CreatedAt time.Time      `db:"CREATED_AT"`
}
