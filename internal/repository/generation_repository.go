package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"quizera/internal/domain"
	"quizera/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const (
	insertGenerationQuery = `INSERT INTO quiz_generations (id, document_id, quiz_type, difficulty, question_count, result_json, created_at) VALUES (:1, :2, :3, :4, :5, :6, :7)`
	listGenerationsQuery  = `SELECT id, document_id, quiz_type, difficulty, question_count, result_json, created_at FROM quiz_generations WHERE document_id = :1 ORDER BY created_at DESC`
)

// sqlxGenerationRepository implements domain.GenerationRepository using sqlx.
type sqlxGenerationRepository struct {
	db *sqlx.DB
}

// NewSQLXGenerationRepository creates a new instance of sqlxGenerationRepository.
func NewSQLXGenerationRepository(db *sqlx.DB) domain.GenerationRepository {
	return &sqlxGenerationRepository{db: db}
}

func (r *sqlxGenerationRepository) SaveGeneration(ctx context.Context, gen *domain.Generation) error {
	m, err := fromDomainGeneration(gen)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, insertGenerationQuery,
		m.ID, m.DocumentID, m.QuizType, m.Difficulty, m.QuestionCount, m.ResultJSON, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save generation %s: %w", gen.ID, err)
	}
	return nil
}

// ListGenerationsByDocument returns generations newest first. Rows whose
// stored quiz cannot be decoded are returned with an empty quiz.
func (r *sqlxGenerationRepository) ListGenerationsByDocument(ctx context.Context, documentID string) ([]*domain.Generation, error) {
	var rows []models.Generation
	if err := r.db.SelectContext(ctx, &rows, listGenerationsQuery, documentID); err != nil {
		return nil, fmt.Errorf("failed to list generations for document %s: %w", documentID, err)
	}

	gens := make([]*domain.Generation, 0, len(rows))
	for i := range rows {
		gens = append(gens, toDomainGeneration(&rows[i]))
	}
	return gens, nil
}

func toDomainGeneration(m *models.Generation) *domain.Generation {
	if m == nil {
		return nil
	}
	result := &domain.QuizResult{Questions: []domain.Question{}}
	if err := json.Unmarshal([]byte(m.ResultJSON), result); err != nil || result.Questions == nil {
		result = &domain.QuizResult{Questions: []domain.Question{}}
	}
	return &domain.Generation{
		ID:            m.ID,
		DocumentID:    m.DocumentID.String,
		QuizType:      domain.QuestionType(m.QuizType),
		Difficulty:    domain.Difficulty(m.Difficulty),
		QuestionCount: m.QuestionCount,
		Result:        result,
		CreatedAt:     m.CreatedAt,
	}
}

func fromDomainGeneration(g *domain.Generation) (*models.Generation, error) {
	result := g.Result
	if result == nil || result.Questions == nil {
		result = &domain.QuizResult{Questions: []domain.Question{}}
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode generation %s: %w", g.ID, err)
	}
	return &models.Generation{
		ID:            g.ID,
		DocumentID:    sql.NullString{String: g.DocumentID, Valid: g.DocumentID != ""},
		QuizType:      int(g.QuizType),
		Difficulty:    int(g.Difficulty),
		QuestionCount: g.QuestionCount,
		ResultJSON:    string(payload),
		CreatedAt:     g.CreatedAt,
	}, nil
}
