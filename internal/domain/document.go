package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDocumentNotFound is returned by a DocumentStore when no text is held for an id.
var ErrDocumentNotFound = errors.New("document not found")

// Document is the metadata kept for an uploaded document.
type Document struct {
	ID         string
	Filename   string
	CharCount  int
	UploadedAt time.Time
}

// Generation records one quiz produced by the service.
type Generation struct {
	ID            string
	DocumentID    string // empty when the quiz came from a direct upload
	QuizType      QuestionType
	Difficulty    Difficulty
	QuestionCount int
	Result        *QuizResult
	CreatedAt     time.Time
}

// DocumentStore recalls previously extracted document text by id.
type DocumentStore interface {
	Put(ctx context.Context, id string, text string) error
	// Get returns ErrDocumentNotFound when the id is unknown or expired.
	Get(ctx context.Context, id string) (string, error)
	// Delete forgets id. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// DocumentRepository persists document metadata.
type DocumentRepository interface {
	SaveDocument(ctx context.Context, doc *Document) error
	// GetDocumentByID returns nil, nil when the document does not exist.
	GetDocumentByID(ctx context.Context, id string) (*Document, error)
}

// GenerationRepository persists generated quizzes.
type GenerationRepository interface {
	SaveGeneration(ctx context.Context, gen *Generation) error
	ListGenerationsByDocument(ctx context.Context, documentID string) ([]*Generation, error)
}
