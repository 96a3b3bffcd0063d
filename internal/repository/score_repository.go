package repository

import (
	"context"
	"database/sql"
	"fmt"

	"quizera/internal/domain"
	"quizera/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const (
	insertScoreQuery          = `INSERT INTO quiz_scores (id, username, score, topic, created_at) VALUES (:1, :2, :3, :4, :5)`
	listTopScoresQuery        = `SELECT id, username, score, topic, created_at FROM quiz_scores ORDER BY score DESC, created_at ASC FETCH FIRST :1 ROWS ONLY`
	listTopScoresByTopicQuery = `SELECT id, username, score, topic, created_at FROM quiz_scores WHERE topic = :1 ORDER BY score DESC, created_at ASC FETCH FIRST :2 ROWS ONLY`
	clearScoresQuery          = `DELETE FROM quiz_scores`
)

// sqlxScoreRepository implements domain.ScoreRepository using sqlx.
type sqlxScoreRepository struct {
	db *sqlx.DB
}

// NewSQLXScoreRepository creates a new instance of sqlxScoreRepository.
func NewSQLXScoreRepository(db *sqlx.DB) domain.ScoreRepository {
	return &sqlxScoreRepository{db: db}
}

func (r *sqlxScoreRepository) SaveScore(ctx context.Context, entry *domain.ScoreEntry) error {
	m := fromDomainScore(entry)
	_, err := r.db.ExecContext(ctx, insertScoreQuery, m.ID, m.Username, m.Score, m.Topic, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save score %s: %w", entry.ID, err)
	}
	return nil
}

func (r *sqlxScoreRepository) ListTopScores(ctx context.Context, topic string, limit int) ([]*domain.ScoreEntry, error) {
	var rows []models.Score
	var err error
	if topic == "" {
		err = r.db.SelectContext(ctx, &rows, listTopScoresQuery, limit)
	} else {
		err = r.db.SelectContext(ctx, &rows, listTopScoresByTopicQuery, topic, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list top scores: %w", err)
	}

	entries := make([]*domain.ScoreEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, toDomainScore(&rows[i]))
	}
	return entries, nil
}

func (r *sqlxScoreRepository) ClearScores(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, clearScoresQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to clear scores: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared scores: %w", err)
	}
	return removed, nil
}

func toDomainScore(m *models.Score) *domain.ScoreEntry {
	if m == nil {
		return nil
	}
	return &domain.ScoreEntry{
		ID:        m.ID,
		Username:  m.Username,
		Score:     m.Score,
		Topic:     m.Topic.String,
		CreatedAt: m.CreatedAt,
	}
}

func fromDomainScore(e *domain.ScoreEntry) *models.Score {
	return &models.Score{
		ID:        e.ID,
		Username:  e.Username,
		Score:     e.Score,
		Topic:     sql.NullString{String: e.Topic, Valid: e.Topic != ""},
		CreatedAt: e.CreatedAt,
	}
}
