package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizera/internal/config"
	"quizera/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionID = "01HGZ9B3K4M5N6P7Q8R9S0T1V2"

type practiceFixture struct {
	svc       *practiceService
	extractor *MockTextExtractor
	generator *MockQuizGenerator
	sessions  domain.QuizSessionStore
	genRepo   *MockGenerationRepository
}

func newPracticeFixture(t *testing.T) *practiceFixture {
	t.Helper()
	f := &practiceFixture{
		extractor: new(MockTextExtractor),
		generator: new(MockQuizGenerator),
		sessions:  NewMemoryQuizSessionStore(time.Hour),
		genRepo:   new(MockGenerationRepository),
	}
	cfg := &config.Config{
		LLM:  config.LLMConfig{Timeout: 30 * time.Second},
		Quiz: config.QuizConfig{DefaultQuestionCount: 5},
	}
	svc, err := NewPracticeService(f.extractor, f.generator, f.sessions, f.genRepo, cfg)
	require.NoError(t, err)
	f.svc = svc.(*practiceService)
	f.svc.newID = func() string { return testDocID }
	f.svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func twoQuestionQuiz() *domain.QuizResult {
	return &domain.QuizResult{Questions: []domain.Question{
		{Question: "2+2?", Options: []string{"3", "4"}, Answer: "4", Explanation: "Basic sum."},
		{Question: "Capital of France?", Options: []string{"Paris", "Rome"}, Answer: "Paris"},
	}}
}

func TestNewPracticeService(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewPracticeService(nil, new(MockQuizGenerator), NewMemoryQuizSessionStore(time.Hour), nil, cfg)
	assert.Error(t, err)

	_, err = NewPracticeService(new(MockTextExtractor), new(MockQuizGenerator), NewMemoryQuizSessionStore(time.Hour), nil, nil)
	assert.Error(t, err)

	svc, err := NewPracticeService(new(MockTextExtractor), new(MockQuizGenerator), NewMemoryQuizSessionStore(time.Hour), nil, cfg)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestPracticeService_GenerateTopicQuiz(t *testing.T) {
	ctx := context.Background()
	input := TopicQuizInput{
		Topic:         "Photosynthesis",
		QuestionType:  domain.QuestionTypeMCQ,
		Difficulty:    domain.DifficultyEasy,
		QuestionCount: 3,
	}
	wantReq := domain.GenerationRequest{
		Topic:         "Photosynthesis",
		QuestionType:  domain.QuestionTypeMCQ,
		Difficulty:    domain.DifficultyEasy,
		QuestionCount: 3,
	}

	t.Run("Success", func(t *testing.T) {
		f := newPracticeFixture(t)
		f.generator.On("Generate", mock.Anything, wantReq).Return(sampleResult(), nil).Once()
		f.genRepo.On("SaveGeneration", ctx, mock.MatchedBy(func(g *domain.Generation) bool {
			return g.DocumentID == "" && g.QuestionCount == 3 && g.Difficulty == domain.DifficultyEasy
		})).Return(nil).Once()

		resp, err := f.svc.GenerateTopicQuiz(ctx, testSessionID, input)
		require.NoError(t, err)
		require.Len(t, resp.Questions, 1)
		assert.Equal(t, "Mitochondria", resp.Questions[0].Answer)

		kept, err := f.sessions.LastQuiz(ctx, testSessionID)
		require.NoError(t, err)
		assert.Equal(t, sampleResult(), kept)
		f.generator.AssertExpectations(t)
		f.genRepo.AssertExpectations(t)
	})

	t.Run("GeneratorError", func(t *testing.T) {
		f := newPracticeFixture(t)
		genErr := domain.NewProviderError(errors.New("quota"))
		f.generator.On("Generate", mock.Anything, wantReq).Return(nil, genErr).Once()

		resp, err := f.svc.GenerateTopicQuiz(ctx, testSessionID, input)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, genErr)
		_, err = f.sessions.LastQuiz(ctx, testSessionID)
		assert.ErrorIs(t, err, domain.ErrNoActiveQuiz)
		f.genRepo.AssertNotCalled(t, "SaveGeneration", mock.Anything, mock.Anything)
	})

	t.Run("SessionFailureStillReturnsQuiz", func(t *testing.T) {
		f := newPracticeFixture(t)
		mockCache := new(MockCache)
		sessions, err := NewCacheQuizSessionStore(mockCache, time.Hour)
		require.NoError(t, err)
		f.svc.sessions = sessions
		mockCache.On("Set", ctx, mock.Anything, mock.Anything, time.Hour).Return(errors.New("redis down")).Once()
		f.generator.On("Generate", mock.Anything, wantReq).Return(sampleResult(), nil).Once()
		f.genRepo.On("SaveGeneration", ctx, mock.Anything).Return(nil).Once()

		resp, err := f.svc.GenerateTopicQuiz(ctx, testSessionID, input)
		require.NoError(t, err)
		assert.Len(t, resp.Questions, 1)
		mockCache.AssertExpectations(t)
	})
}

func TestPracticeService_UploadAndQuiz(t *testing.T) {
	ctx := context.Background()
	content := []byte("%PDF-1.4 sample")
	wantReq := domain.GenerationRequest{
		SourceText:    "cell biology",
		QuestionType:  domain.QuestionTypeMCQ,
		Difficulty:    domain.DifficultyMedium,
		QuestionCount: 5,
	}

	t.Run("Success", func(t *testing.T) {
		f := newPracticeFixture(t)
		f.extractor.On("ExtractText", ctx, content).Return("cell biology", nil).Once()
		f.generator.On("Generate", mock.Anything, wantReq).Return(sampleResult(), nil).Once()
		f.genRepo.On("SaveGeneration", ctx, mock.Anything).Return(nil).Once()

		resp, err := f.svc.UploadAndQuiz(ctx, testSessionID, "notes.pdf", content)
		require.NoError(t, err)
		assert.Equal(t, chatbotQuizMessage, resp.Message)
		require.Len(t, resp.Quiz, 1)
		assert.Equal(t, []string{"Nucleus", "Mitochondria"}, resp.Quiz[0].Options)

		kept, err := f.sessions.LastQuiz(ctx, testSessionID)
		require.NoError(t, err)
		assert.Len(t, kept.Questions, 1)
	})

	t.Run("ExtractionError", func(t *testing.T) {
		f := newPracticeFixture(t)
		f.extractor.On("ExtractText", ctx, content).Return("", errors.New("corrupt xref")).Once()

		resp, err := f.svc.UploadAndQuiz(ctx, testSessionID, "notes.pdf", content)
		assert.Nil(t, resp)
		assert.True(t, domain.IsExtractionError(err))
		f.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("SessionFailureFailsRequest", func(t *testing.T) {
		f := newPracticeFixture(t)
		mockCache := new(MockCache)
		sessions, err := NewCacheQuizSessionStore(mockCache, time.Hour)
		require.NoError(t, err)
		f.svc.sessions = sessions
		mockCache.On("Set", ctx, mock.Anything, mock.Anything, time.Hour).Return(errors.New("redis down")).Once()
		f.extractor.On("ExtractText", ctx, content).Return("cell biology", nil).Once()
		f.generator.On("Generate", mock.Anything, wantReq).Return(sampleResult(), nil).Once()
		f.genRepo.On("SaveGeneration", ctx, mock.Anything).Return(nil).Once()

		resp, err := f.svc.UploadAndQuiz(ctx, testSessionID, "notes.pdf", content)
		assert.Nil(t, resp)
		assert.True(t, domain.HasCode(err, domain.CodeInternal))
	})
}

func TestPracticeService_LastQuiz(t *testing.T) {
	ctx := context.Background()
	f := newPracticeFixture(t)

	resp, err := f.svc.LastQuiz(ctx, testSessionID)
	require.NoError(t, err)
	assert.NotNil(t, resp.Questions)
	assert.Empty(t, resp.Questions)

	require.NoError(t, f.sessions.SaveQuiz(ctx, testSessionID, twoQuestionQuiz()))
	resp, err = f.svc.LastQuiz(ctx, testSessionID)
	require.NoError(t, err)
	assert.Len(t, resp.Questions, 2)

	resp, err = f.svc.LastQuiz(ctx, "01HGZ9B3K4M5N6P7Q8R9S0T1V3")
	require.NoError(t, err)
	assert.Empty(t, resp.Questions)
}

func TestPracticeService_SubmitQuiz(t *testing.T) {
	ctx := context.Background()
	one := 1
	zero := 0

	t.Run("GradesAndClears", func(t *testing.T) {
		f := newPracticeFixture(t)
		require.NoError(t, f.sessions.SaveQuiz(ctx, testSessionID, twoQuestionQuiz()))

		resp, err := f.svc.SubmitQuiz(ctx, testSessionID, []domain.SubmittedAnswer{
			{OptionIndex: &one},
			{OptionIndex: &one},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Score)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, 50, resp.Percent)
		require.Len(t, resp.Wrong, 1)
		assert.Equal(t, "Capital of France?", resp.Wrong[0].Question)
		assert.Equal(t, "Rome", resp.Wrong[0].YourAnswer)
		assert.Equal(t, "Paris", resp.Wrong[0].CorrectAnswer)

		_, err = f.sessions.LastQuiz(ctx, testSessionID)
		assert.ErrorIs(t, err, domain.ErrNoActiveQuiz)
	})

	t.Run("PercentRounds", func(t *testing.T) {
		f := newPracticeFixture(t)
		quiz := twoQuestionQuiz()
		quiz.Questions = append(quiz.Questions, domain.Question{Question: "1+1?", Options: []string{"2", "3"}, Answer: "2"})
		require.NoError(t, f.sessions.SaveQuiz(ctx, testSessionID, quiz))

		resp, err := f.svc.SubmitQuiz(ctx, testSessionID, []domain.SubmittedAnswer{
			{OptionIndex: &one},
			{OptionIndex: &zero},
			{Text: "3"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Score)
		assert.Equal(t, 67, resp.Percent)
	})

	t.Run("NoActiveQuiz", func(t *testing.T) {
		f := newPracticeFixture(t)
		resp, err := f.svc.SubmitQuiz(ctx, testSessionID, nil)
		assert.Nil(t, resp)
		assert.True(t, domain.HasCode(err, domain.CodeNotFound))
	})

	t.Run("SkippedAnswersAreMissed", func(t *testing.T) {
		f := newPracticeFixture(t)
		require.NoError(t, f.sessions.SaveQuiz(ctx, testSessionID, twoQuestionQuiz()))

		resp, err := f.svc.SubmitQuiz(ctx, testSessionID, []domain.SubmittedAnswer{{}})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Score)
		assert.Equal(t, 0, resp.Percent)
		assert.Len(t, resp.Wrong, 2)
	})

	t.Run("ClearFailureIsLogged", func(t *testing.T) {
		f := newPracticeFixture(t)
		mockCache := new(MockCache)
		sessions, err := NewCacheQuizSessionStore(mockCache, time.Hour)
		require.NoError(t, err)
		f.svc.sessions = sessions
		mockCache.On("Get", ctx, mock.Anything).
			Return(`{"questions":[{"question":"2+2?","options":["3","4"],"answer":"4","explanation":""}]}`, nil).Once()
		mockCache.On("Delete", ctx, mock.Anything).Return(errors.New("redis down")).Once()

		resp, err := f.svc.SubmitQuiz(ctx, testSessionID, []domain.SubmittedAnswer{{OptionIndex: &one}})
		require.NoError(t, err)
		assert.Equal(t, 100, resp.Percent)
		mockCache.AssertExpectations(t)
	})
}
