package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNoActiveQuiz is returned by a QuizSessionStore when a session holds no quiz.
var ErrNoActiveQuiz = errors.New("no active quiz for session")

// QuizSessionStore remembers the most recent quiz served to a browser session.
type QuizSessionStore interface {
	SaveQuiz(ctx context.Context, sessionID string, quiz *QuizResult) error
	// LastQuiz returns ErrNoActiveQuiz when nothing is held for sessionID.
	LastQuiz(ctx context.Context, sessionID string) (*QuizResult, error)
	ClearQuiz(ctx context.Context, sessionID string) error
}

// SubmittedAnswer is one player answer. OptionIndex selects an option by
// position; otherwise Text is compared with the expected answer. Both unset
// means the question was skipped.
type SubmittedAnswer struct {
	OptionIndex *int
	Text        string
}

// MissedQuestion describes a question answered wrongly or not at all.
type MissedQuestion struct {
	Question      string
	YourAnswer    string
	CorrectAnswer string
	Explanation   string
}

// QuizGrade is the outcome of checking a set of answers against a quiz.
type QuizGrade struct {
	Score  int
	Total  int
	Missed []MissedQuestion
}

// ScoreEntry is one leaderboard row.
type ScoreEntry struct {
	ID        string
	Username  string
	Score     int
	Topic     string
	CreatedAt time.Time
}

// ScoreRepository persists leaderboard entries.
type ScoreRepository interface {
	SaveScore(ctx context.Context, entry *ScoreEntry) error
	// ListTopScores orders by score descending, earlier entries first on
	// ties. An empty topic lists every topic.
	ListTopScores(ctx context.Context, topic string, limit int) ([]*ScoreEntry, error)
	// ClearScores removes every entry and reports how many were removed.
	ClearScores(ctx context.Context) (int64, error)
}
