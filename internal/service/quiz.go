package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"quizera/internal/config"
	"quizera/internal/domain"
	"quizera/internal/dto"
	"quizera/internal/logger"
	"quizera/internal/util"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const uploadSuccessMessage = "PDF uploaded successfully"

// GenerateQuizInput carries a generate request after form parsing. Content is
// used only when DocumentID does not name a stored document.
type GenerateQuizInput struct {
	DocumentID    string
	Filename      string
	Content       []byte
	QuestionType  domain.QuestionType
	Difficulty    domain.Difficulty
	QuestionCount int
}

// QuizService defines the interface for document and quiz operations
type QuizService interface {
	UploadDocument(ctx context.Context, filename string, content []byte) (*dto.UploadDocumentResponse, error)
	GenerateQuiz(ctx context.Context, input GenerateQuizInput) (*dto.QuizResponse, error)
	GetDocument(ctx context.Context, id string) (*dto.DocumentResponse, error)
	ListGenerations(ctx context.Context, documentID string) ([]dto.GenerationResponse, error)
}

// quizService implements QuizService
type quizService struct {
	extractor  domain.TextExtractor
	generator  domain.QuizGenerator
	store      domain.DocumentStore
	docRepo    domain.DocumentRepository
	genRepo    domain.GenerationRepository
	fs         afero.Fs
	uploadsDir string
	llmTimeout time.Duration
	newID      func() string
	now        func() time.Time
}

// NewQuizService creates a new instance of quizService. The uploads directory
// is created on fs if it does not exist.
func NewQuizService(
	extractor domain.TextExtractor,
	generator domain.QuizGenerator,
	store domain.DocumentStore,
	docRepo domain.DocumentRepository,
	genRepo domain.GenerationRepository,
	fs afero.Fs,
	cfg *config.Config,
) (QuizService, error) {
	if extractor == nil || generator == nil || store == nil {
		return nil, fmt.Errorf("extractor, generator and store are required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config instance cannot be nil for QuizService")
	}
	if docRepo == nil {
		docRepo = NewNoopDocumentRepository()
	}
	if genRepo == nil {
		genRepo = NewNoopGenerationRepository()
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if err := fs.MkdirAll(cfg.Storage.UploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", cfg.Storage.UploadsDir, err)
	}
	return &quizService{
		extractor:  extractor,
		generator:  generator,
		store:      store,
		docRepo:    docRepo,
		genRepo:    genRepo,
		fs:         fs,
		uploadsDir: cfg.Storage.UploadsDir,
		llmTimeout: cfg.LLM.Timeout,
		newID:      util.NewULID,
		now:        time.Now,
	}, nil
}

// UploadDocument extracts the text of a PDF, keeps it for later generate
// calls and saves the uploaded file as <id>.pdf. A failed upload leaves
// neither stored text nor a file behind.
func (s *quizService) UploadDocument(ctx context.Context, filename string, content []byte) (*dto.UploadDocumentResponse, error) {
	text, err := s.extractor.ExtractText(ctx, content)
	if err != nil {
		return nil, asExtractionError(err)
	}

	id := s.newID()
	if err := s.store.Put(ctx, id, text); err != nil {
		return nil, domain.NewInternalError("Failed to store document text", err)
	}

	path := filepath.Join(s.uploadsDir, id+".pdf")
	if err := afero.WriteFile(s.fs, path, content, 0o644); err != nil {
		if delErr := s.store.Delete(ctx, id); delErr != nil {
			logger.Get().Warn("Failed to roll back document text", zap.String("pdf_id", id), zap.Error(delErr))
		}
		return nil, domain.NewInternalError("Failed to save uploaded file", err)
	}

	doc := &domain.Document{
		ID:         id,
		Filename:   filename,
		CharCount:  len([]rune(text)),
		UploadedAt: s.now().UTC(),
	}
	if err := s.docRepo.SaveDocument(ctx, doc); err != nil {
		logger.Get().Error("Failed to save document metadata", zap.String("pdf_id", id), zap.Error(err))
	}

	logger.Get().Info("Document uploaded",
		zap.String("pdf_id", id),
		zap.String("filename", filename),
		zap.Int("char_count", doc.CharCount),
	)
	return &dto.UploadDocumentResponse{
		Message:  uploadSuccessMessage,
		PDFID:    id,
		Filename: filename,
	}, nil
}

// GenerateQuiz resolves the source text, from the store by id or else from
// the attached file, and runs the generator under the configured timeout.
func (s *quizService) GenerateQuiz(ctx context.Context, input GenerateQuizInput) (*dto.QuizResponse, error) {
	text, documentID, err := s.resolveSource(ctx, input)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := withTimeout(ctx, s.llmTimeout)
	defer cancel()

	result, err := s.generator.Generate(genCtx, domain.GenerationRequest{
		SourceText:    text,
		QuestionType:  input.QuestionType,
		Difficulty:    input.Difficulty,
		QuestionCount: input.QuestionCount,
	})
	if err != nil {
		return nil, err
	}

	recordGeneration(ctx, s.genRepo, &domain.Generation{
		ID:            s.newID(),
		DocumentID:    documentID,
		QuizType:      input.QuestionType,
		Difficulty:    input.Difficulty,
		QuestionCount: input.QuestionCount,
		Result:        result,
		CreatedAt:     s.now().UTC(),
	})
	return toQuizResponse(result), nil
}

func (s *quizService) resolveSource(ctx context.Context, input GenerateQuizInput) (text string, documentID string, err error) {
	if input.DocumentID != "" && util.IsValidULID(input.DocumentID) {
		text, err = s.store.Get(ctx, input.DocumentID)
		switch {
		case err == nil:
			return text, input.DocumentID, nil
		case errors.Is(err, domain.ErrDocumentNotFound):
			logger.Get().Debug("Document not in store", zap.String("pdf_id", input.DocumentID))
		default:
			return "", "", domain.NewInternalError("Failed to load document text", err)
		}
	}

	if input.Content == nil {
		return "", "", domain.NewInvalidInputError("No PDF provided (neither ID nor file)")
	}
	text, err = s.extractor.ExtractText(ctx, input.Content)
	if err != nil {
		return "", "", asExtractionError(err)
	}
	return text, "", nil
}

// recordGeneration saves history. Failures are logged and never surface.
func recordGeneration(ctx context.Context, repo domain.GenerationRepository, gen *domain.Generation) {
	if err := repo.SaveGeneration(ctx, gen); err != nil {
		logger.Get().Error("Failed to save generation history",
			zap.String("generation_id", gen.ID),
			zap.String("pdf_id", gen.DocumentID),
			zap.Error(err),
		)
	}
}

// withTimeout bounds a backend call. A zero timeout leaves ctx as is.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// GetDocument returns stored metadata for id.
func (s *quizService) GetDocument(ctx context.Context, id string) (*dto.DocumentResponse, error) {
	doc, err := s.docRepo.GetDocumentByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get document", err)
	}
	if doc == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Document %s not found", id))
	}
	return &dto.DocumentResponse{
		ID:         doc.ID,
		Filename:   doc.Filename,
		CharCount:  doc.CharCount,
		UploadedAt: doc.UploadedAt,
	}, nil
}

// ListGenerations returns the quiz history of a document, newest first.
func (s *quizService) ListGenerations(ctx context.Context, documentID string) ([]dto.GenerationResponse, error) {
	gens, err := s.genRepo.ListGenerationsByDocument(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list generations", err)
	}

	resp := make([]dto.GenerationResponse, 0, len(gens))
	for _, g := range gens {
		resp = append(resp, dto.GenerationResponse{
			ID:            g.ID,
			DocumentID:    g.DocumentID,
			QuizType:      int(g.QuizType),
			QuizTypeLabel: g.QuizType.Label(),
			Difficulty:    g.Difficulty.Label(),
			QuestionCount: g.QuestionCount,
			Quiz:          toQuizResponse(g.Result),
			CreatedAt:     g.CreatedAt,
		})
	}
	return resp, nil
}

func toQuizResponse(result *domain.QuizResult) *dto.QuizResponse {
	resp := &dto.QuizResponse{Questions: []dto.QuestionResponse{}}
	if result == nil {
		return resp
	}
	for _, q := range result.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionResponse{
			Question:    q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}
	return resp
}

func asExtractionError(err error) error {
	if domain.IsExtractionError(err) {
		return err
	}
	return domain.NewExtractionError(err)
}
