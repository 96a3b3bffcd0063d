package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quizera/internal/config"
	"quizera/internal/domain"
	"quizera/internal/dto"
	"quizera/internal/handler"
	"quizera/internal/middleware"
	"quizera/internal/service"
	"quizera/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSessionID     = "01HGZ9B3K4M5N6P7Q8R9S0T1V2"
	testSessionCookie = "quizera_session"
)

type MockPracticeService struct {
	GenerateTopicQuizFunc func(ctx context.Context, sessionID string, input service.TopicQuizInput) (*dto.QuizResponse, error)
	UploadAndQuizFunc     func(ctx context.Context, sessionID, filename string, content []byte) (*dto.ChatbotQuizResponse, error)
	LastQuizFunc          func(ctx context.Context, sessionID string) (*dto.QuizResponse, error)
	SubmitQuizFunc        func(ctx context.Context, sessionID string, answers []domain.SubmittedAnswer) (*dto.QuizGradeResponse, error)
}

func (m *MockPracticeService) GenerateTopicQuiz(ctx context.Context, sessionID string, input service.TopicQuizInput) (*dto.QuizResponse, error) {
	if m.GenerateTopicQuizFunc != nil {
		return m.GenerateTopicQuizFunc(ctx, sessionID, input)
	}
	panic("MockPracticeService.GenerateTopicQuizFunc not implemented")
}

func (m *MockPracticeService) UploadAndQuiz(ctx context.Context, sessionID, filename string, content []byte) (*dto.ChatbotQuizResponse, error) {
	if m.UploadAndQuizFunc != nil {
		return m.UploadAndQuizFunc(ctx, sessionID, filename, content)
	}
	panic("MockPracticeService.UploadAndQuizFunc not implemented")
}

func (m *MockPracticeService) LastQuiz(ctx context.Context, sessionID string) (*dto.QuizResponse, error) {
	if m.LastQuizFunc != nil {
		return m.LastQuizFunc(ctx, sessionID)
	}
	panic("MockPracticeService.LastQuizFunc not implemented")
}

func (m *MockPracticeService) SubmitQuiz(ctx context.Context, sessionID string, answers []domain.SubmittedAnswer) (*dto.QuizGradeResponse, error) {
	if m.SubmitQuizFunc != nil {
		return m.SubmitQuizFunc(ctx, sessionID, answers)
	}
	panic("MockPracticeService.SubmitQuizFunc not implemented")
}

func setupPracticeApp(svc service.PracticeService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	session := middleware.Session(config.SessionConfig{CookieName: testSessionCookie, TTL: time.Hour})
	handler.RegisterPracticeRoutes(app, handler.NewPracticeHandler(svc, validation.NewValidator(5, 50)), session)
	return app
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: testSessionID})
	return req
}

func TestTopicQuiz(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var got service.TopicQuizInput
		var gotSession string
		app := setupPracticeApp(&MockPracticeService{
			GenerateTopicQuizFunc: func(_ context.Context, sessionID string, input service.TopicQuizInput) (*dto.QuizResponse, error) {
				gotSession, got = sessionID, input
				return &dto.QuizResponse{Questions: []dto.QuestionResponse{{Question: "Q", Answer: "A"}}}, nil
			},
		})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/quiz/generate-topic", `{"topic":"  Photosynthesis ","difficulty":"Hard"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decode[dto.QuizResponse](t, resp)
		assert.Len(t, body.Questions, 1)
		assert.Equal(t, testSessionID, gotSession)
		assert.Equal(t, service.TopicQuizInput{
			Topic:         "Photosynthesis",
			QuestionType:  domain.QuestionTypeMCQ,
			Difficulty:    domain.DifficultyHard,
			QuestionCount: 5,
		}, got)
	})

	t.Run("ExplicitTypeAndCount", func(t *testing.T) {
		var got service.TopicQuizInput
		app := setupPracticeApp(&MockPracticeService{
			GenerateTopicQuizFunc: func(_ context.Context, _ string, input service.TopicQuizInput) (*dto.QuizResponse, error) {
				got = input
				return &dto.QuizResponse{Questions: []dto.QuestionResponse{}}, nil
			},
		})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/quiz/generate-topic", `{"topic":"Rome","difficulty":"1","quiz_type":3,"num_questions":8}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, domain.QuestionTypeTrueFalse, got.QuestionType)
		assert.Equal(t, domain.DifficultyEasy, got.Difficulty)
		assert.Equal(t, 8, got.QuestionCount)
	})

	t.Run("MissingTopic", func(t *testing.T) {
		app := setupPracticeApp(&MockPracticeService{})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/quiz/generate-topic", `{"topic":"   "}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decode[middleware.ValidationErrorResponse](t, resp)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "topic", body.Errors[0].Field)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		app := setupPracticeApp(&MockPracticeService{})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/quiz/generate-topic", `{"topic":`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ProviderError", func(t *testing.T) {
		app := setupPracticeApp(&MockPracticeService{
			GenerateTopicQuizFunc: func(context.Context, string, service.TopicQuizInput) (*dto.QuizResponse, error) {
				return nil, domain.NewProviderError(errors.New("quota"))
			},
		})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/quiz/generate-topic", `{"topic":"Rome"}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestUploadAndQuiz(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotName string
		app := setupPracticeApp(&MockPracticeService{
			UploadAndQuizFunc: func(_ context.Context, sessionID, filename string, content []byte) (*dto.ChatbotQuizResponse, error) {
				assert.NotEmpty(t, sessionID)
				assert.Equal(t, []byte("%PDF-1.4"), content)
				gotName = filename
				return &dto.ChatbotQuizResponse{Message: "Quiz generated successfully", Quiz: []dto.QuestionResponse{{Question: "Q"}}}, nil
			},
		})

		req := multipartRequest(t, "/api/chatbot/upload-and-quiz", nil, formFile{field: "file", filename: "notes.pdf", content: []byte("%PDF-1.4")})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decode[dto.ChatbotQuizResponse](t, resp)
		assert.Len(t, body.Quiz, 1)
		assert.Equal(t, "notes.pdf", gotName)

		var cookieSet bool
		for _, c := range resp.Cookies() {
			cookieSet = cookieSet || c.Name == testSessionCookie
		}
		assert.True(t, cookieSet)
	})

	t.Run("MissingFile", func(t *testing.T) {
		app := setupPracticeApp(&MockPracticeService{})

		req := multipartRequest(t, "/api/chatbot/upload-and-quiz", map[string]string{"note": "x"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decode[middleware.ErrorResponse](t, resp)
		assert.Equal(t, "No file provided", body.Message)
	})

	t.Run("ExtractionError", func(t *testing.T) {
		app := setupPracticeApp(&MockPracticeService{
			UploadAndQuizFunc: func(context.Context, string, string, []byte) (*dto.ChatbotQuizResponse, error) {
				return nil, domain.NewExtractionError(errors.New("corrupt"))
			},
		})

		req := multipartRequest(t, "/api/chatbot/upload-and-quiz", nil, formFile{field: "file", filename: "bad.pdf", content: []byte("x")})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestQuizQuestions(t *testing.T) {
	app := setupPracticeApp(&MockPracticeService{
		LastQuizFunc: func(_ context.Context, sessionID string) (*dto.QuizResponse, error) {
			if sessionID != testSessionID {
				return &dto.QuizResponse{Questions: []dto.QuestionResponse{}}, nil
			}
			return &dto.QuizResponse{Questions: []dto.QuestionResponse{{Question: "Q1"}, {Question: "Q2"}}}, nil
		},
	})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/quiz/questions", ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.QuizResponse](t, resp).Questions, 2)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/quiz/questions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[dto.QuizResponse](t, resp).Questions)
}

func TestSubmitQuiz(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var got []domain.SubmittedAnswer
		app := setupPracticeApp(&MockPracticeService{
			SubmitQuizFunc: func(_ context.Context, sessionID string, answers []domain.SubmittedAnswer) (*dto.QuizGradeResponse, error) {
				assert.Equal(t, testSessionID, sessionID)
				got = answers
				return &dto.QuizGradeResponse{Score: 1, Total: 3, Percent: 33, Wrong: []dto.MissedQuestionResponse{}}, nil
			},
		})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/chatbot/submit-quiz", `{"answers":[1,null,"Paris"]}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decode[dto.QuizGradeResponse](t, resp)
		assert.Equal(t, 33, body.Percent)
		require.Len(t, got, 3)
		require.NotNil(t, got[0].OptionIndex)
		assert.Equal(t, 1, *got[0].OptionIndex)
		assert.Equal(t, domain.SubmittedAnswer{}, got[1])
		assert.Equal(t, "Paris", got[2].Text)
	})

	t.Run("InvalidAnswer", func(t *testing.T) {
		app := setupPracticeApp(&MockPracticeService{})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/chatbot/submit-quiz", `{"answers":[1.5]}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decode[middleware.ValidationErrorResponse](t, resp)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "answers[0]", body.Errors[0].Field)
	})

	t.Run("MissingAnswers", func(t *testing.T) {
		app := setupPracticeApp(&MockPracticeService{})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/chatbot/submit-quiz", `{}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NoActiveQuiz", func(t *testing.T) {
		app := setupPracticeApp(&MockPracticeService{
			SubmitQuizFunc: func(context.Context, string, []domain.SubmittedAnswer) (*dto.QuizGradeResponse, error) {
				return nil, domain.NewNotFoundError("No active quiz for this session")
			},
		})

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/chatbot/submit-quiz", `{"answers":[]}`))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
