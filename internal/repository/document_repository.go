package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quizera/internal/domain"
	"quizera/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const (
	insertDocumentQuery = `INSERT INTO documents (id, filename, char_count, uploaded_at) VALUES (:1, :2, :3, :4)`
	selectDocumentQuery = `SELECT id, filename, char_count, uploaded_at FROM documents WHERE id = :1`
)

// sqlxDocumentRepository implements domain.DocumentRepository using sqlx.
type sqlxDocumentRepository struct {
	db *sqlx.DB
}

// NewSQLXDocumentRepository creates a new instance of sqlxDocumentRepository.
func NewSQLXDocumentRepository(db *sqlx.DB) domain.DocumentRepository {
	return &sqlxDocumentRepository{db: db}
}

func (r *sqlxDocumentRepository) SaveDocument(ctx context.Context, doc *domain.Document) error {
	m := fromDomainDocument(doc)
	if _, err := r.db.ExecContext(ctx, insertDocumentQuery, m.ID, m.Filename, m.CharCount, m.UploadedAt); err != nil {
		return fmt.Errorf("failed to save document %s: %w", doc.ID, err)
	}
	return nil
}

// GetDocumentByID returns nil, nil when no row matches.
func (r *sqlxDocumentRepository) GetDocumentByID(ctx context.Context, id string) (*domain.Document, error) {
	var m models.Document
	if err := r.db.GetContext(ctx, &m, selectDocumentQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by id: %w", err)
	}
	return toDomainDocument(&m), nil
}

func toDomainDocument(m *models.Document) *domain.Document {
	if m == nil {
		return nil
	}
	return &domain.Document{
		ID:         m.ID,
		Filename:   m.Filename,
		CharCount:  m.CharCount,
		UploadedAt: m.UploadedAt,
	}
}

func fromDomainDocument(d *domain.Document) *models.Document {
	if d == nil {
		return nil
	}
	return &models.Document{
		ID:         d.ID,
		Filename:   d.Filename,
		CharCount:  d.CharCount,
		UploadedAt: d.UploadedAt,
	}
}
