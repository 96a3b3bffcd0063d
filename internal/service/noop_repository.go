package service

import (
	"context"

	"quizera/internal/domain"
)

// noopDocumentRepository is used when no database is configured.
type noopDocumentRepository struct{}

func NewNoopDocumentRepository() domain.DocumentRepository {
	return noopDocumentRepository{}
}

func (noopDocumentRepository) SaveDocument(context.Context, *domain.Document) error {
	return nil
}

func (noopDocumentRepository) GetDocumentByID(context.Context, string) (*domain.Document, error) {
	return nil, nil
}

// noopGenerationRepository is used when no database is configured.
type noopGenerationRepository struct{}

func NewNoopGenerationRepository() domain.GenerationRepository {
	return noopGenerationRepository{}
}

func (noopGenerationRepository) SaveGeneration(context.Context, *domain.Generation) error {
	return nil
}

func (noopGenerationRepository) ListGenerationsByDocument(context.Context, string) ([]*domain.Generation, error) {
	return []*domain.Generation{}, nil
}
