package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"quizera/internal/config"
	"quizera/internal/domain"
	"quizera/internal/dto"
	"quizera/internal/logger"
	"quizera/internal/quizgen"
	"quizera/internal/util"

	"go.uber.org/zap"
)

const chatbotQuizMessage = "Quiz generated successfully"

// TopicQuizInput carries a topic quiz request after validation.
type TopicQuizInput struct {
	Topic         string
	QuestionType  domain.QuestionType
	Difficulty    domain.Difficulty
	QuestionCount int
}

// PracticeService serves quizzes tied to a browser session: generated from a
// topic or an upload, recalled later and checked on submission.
type PracticeService interface {
	GenerateTopicQuiz(ctx context.Context, sessionID string, input TopicQuizInput) (*dto.QuizResponse, error)
	UploadAndQuiz(ctx context.Context, sessionID, filename string, content []byte) (*dto.ChatbotQuizResponse, error)
	LastQuiz(ctx context.Context, sessionID string) (*dto.QuizResponse, error)
	SubmitQuiz(ctx context.Context, sessionID string, answers []domain.SubmittedAnswer) (*dto.QuizGradeResponse, error)
}

type practiceService struct {
	extractor     domain.TextExtractor
	generator     domain.QuizGenerator
	sessions      domain.QuizSessionStore
	genRepo       domain.GenerationRepository
	llmTimeout    time.Duration
	questionCount int
	newID         func() string
	now           func() time.Time
}

// NewPracticeService creates a PracticeService. Upload quizzes use the
// configured default question count.
func NewPracticeService(
	extractor domain.TextExtractor,
	generator domain.QuizGenerator,
	sessions domain.QuizSessionStore,
	genRepo domain.GenerationRepository,
	cfg *config.Config,
) (PracticeService, error) {
	if extractor == nil || generator == nil || sessions == nil {
		return nil, fmt.Errorf("extractor, generator and session store are required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config instance cannot be nil for PracticeService")
	}
	if genRepo == nil {
		genRepo = NewNoopGenerationRepository()
	}
	return &practiceService{
		extractor:     extractor,
		generator:     generator,
		sessions:      sessions,
		genRepo:       genRepo,
		llmTimeout:    cfg.LLM.Timeout,
		questionCount: cfg.Quiz.DefaultQuestionCount,
		newID:         util.NewULID,
		now:           time.Now,
	}, nil
}

// GenerateTopicQuiz generates a quiz from general knowledge of a topic and
// keeps it as the session's last quiz. The quiz is returned even when the
// session cannot be updated.
func (s *practiceService) GenerateTopicQuiz(ctx context.Context, sessionID string, input TopicQuizInput) (*dto.QuizResponse, error) {
	req := domain.GenerationRequest{
		Topic:         input.Topic,
		QuestionType:  input.QuestionType,
		Difficulty:    input.Difficulty,
		QuestionCount: input.QuestionCount,
	}
	result, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SaveQuiz(ctx, sessionID, result); err != nil {
		logger.Get().Error("Failed to keep topic quiz in session",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
	return toQuizResponse(result), nil
}

// UploadAndQuiz extracts a document and generates a multiple choice quiz from
// it. The quiz is only useful once kept in the session, so failing to keep it
// fails the request.
func (s *practiceService) UploadAndQuiz(ctx context.Context, sessionID, filename string, content []byte) (*dto.ChatbotQuizResponse, error) {
	text, err := s.extractor.ExtractText(ctx, content)
	if err != nil {
		return nil, asExtractionError(err)
	}

	result, err := s.generate(ctx, domain.GenerationRequest{
		SourceText:    text,
		QuestionType:  domain.QuestionTypeMCQ,
		Difficulty:    domain.DifficultyMedium,
		QuestionCount: s.questionCount,
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SaveQuiz(ctx, sessionID, result); err != nil {
		return nil, domain.NewInternalError("Failed to keep quiz for this session", err)
	}

	logger.Get().Info("Session quiz generated from upload",
		zap.String("session_id", sessionID),
		zap.String("filename", filename),
		zap.Int("num_questions", len(result.Questions)),
	)
	return &dto.ChatbotQuizResponse{
		Message: chatbotQuizMessage,
		Quiz:    toQuizResponse(result).Questions,
	}, nil
}

// LastQuiz returns the session's last quiz, or an empty quiz when there is none.
func (s *practiceService) LastQuiz(ctx context.Context, sessionID string) (*dto.QuizResponse, error) {
	quiz, err := s.sessions.LastQuiz(ctx, sessionID)
	if errors.Is(err, domain.ErrNoActiveQuiz) {
		return toQuizResponse(nil), nil
	}
	if err != nil {
		return nil, err
	}
	return toQuizResponse(quiz), nil
}

// SubmitQuiz grades answers against the session's last quiz and then forgets
// that quiz, so each quiz is graded once.
func (s *practiceService) SubmitQuiz(ctx context.Context, sessionID string, answers []domain.SubmittedAnswer) (*dto.QuizGradeResponse, error) {
	quiz, err := s.sessions.LastQuiz(ctx, sessionID)
	if errors.Is(err, domain.ErrNoActiveQuiz) {
		return nil, domain.NewNotFoundError("No active quiz for this session")
	}
	if err != nil {
		return nil, err
	}

	grade := quizgen.Grade(quiz, answers)
	if err := s.sessions.ClearQuiz(ctx, sessionID); err != nil {
		logger.Get().Warn("Failed to clear graded session quiz", zap.String("session_id", sessionID), zap.Error(err))
	}

	logger.Get().Info("Session quiz graded",
		zap.String("session_id", sessionID),
		zap.Int("score", grade.Score),
		zap.Int("total", grade.Total),
	)
	return toGradeResponse(grade), nil
}

func (s *practiceService) generate(ctx context.Context, req domain.GenerationRequest) (*domain.QuizResult, error) {
	genCtx, cancel := withTimeout(ctx, s.llmTimeout)
	defer cancel()

	result, err := s.generator.Generate(genCtx, req)
	if err != nil {
		return nil, err
	}
	recordGeneration(ctx, s.genRepo, &domain.Generation{
		ID:            s.newID(),
		QuizType:      req.QuestionType,
		Difficulty:    req.Difficulty,
		QuestionCount: req.QuestionCount,
		Result:        result,
		CreatedAt:     s.now().UTC(),
	})
	return result, nil
}

func toGradeResponse(grade *domain.QuizGrade) *dto.QuizGradeResponse {
	resp := &dto.QuizGradeResponse{
		Score: grade.Score,
		Total: grade.Total,
		Wrong: make([]dto.MissedQuestionResponse, 0, len(grade.Missed)),
	}
	if grade.Total > 0 {
		resp.Percent = int(math.Round(float64(grade.Score) * 100 / float64(grade.Total)))
	}
	for _, m := range grade.Missed {
		resp.Wrong = append(resp.Wrong, dto.MissedQuestionResponse{
			Question:      m.Question,
			YourAnswer:    m.YourAnswer,
			CorrectAnswer: m.CorrectAnswer,
			Explanation:   m.Explanation,
		})
	}
	return resp
}
