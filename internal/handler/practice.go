package handler

import (
	"strconv"

	"quizera/internal/domain"
	"quizera/internal/dto"
	"quizera/internal/logger"
	"quizera/internal/middleware"
	"quizera/internal/service"
	"quizera/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const formFieldFile = "file"

// PracticeHandler serves session quizzes: topic quizzes, upload-and-quiz and
// answer submission.
type PracticeHandler struct {
	service   service.PracticeService
	validator *validation.Validator
}

func NewPracticeHandler(service service.PracticeService, validator *validation.Validator) *PracticeHandler {
	return &PracticeHandler{
		service:   service,
		validator: validator,
	}
}

// TopicQuiz godoc
// @Summary Generate a quiz about a topic
// @Description Generates a quiz from general knowledge of a topic and keeps it as the session's last quiz
// @Tags practice
// @Accept json
// @Produce json
// @Param request body dto.TopicQuizRequest true "Topic quiz request"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/generate-topic [post]
func (h *PracticeHandler) TopicQuiz(c *fiber.Ctx) error {
	var req dto.TopicQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	topic, count, errs := h.validator.ValidateTopicQuiz(req)
	if len(errs) > 0 {
		return errs
	}

	input := service.TopicQuizInput{
		Topic:         topic,
		QuestionType:  domain.ParseQuestionType(strconv.Itoa(req.QuizType)),
		Difficulty:    domain.ParseDifficultyName(req.Difficulty),
		QuestionCount: count,
	}
	quiz, err := h.service.GenerateTopicQuiz(c.UserContext(), middleware.SessionID(c), input)
	if err != nil {
		logger.Get().Error("Failed to generate topic quiz",
			zap.String("topic", topic),
			zap.Int("num_questions", count),
			zap.Error(err),
		)
		return err
	}
	return c.JSON(quiz)
}

// UploadAndQuiz godoc
// @Summary Upload a PDF and quiz on it
// @Description Generates a multiple choice quiz from an uploaded PDF and keeps it as the session's last quiz
// @Tags practice
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Success 200 {object} dto.ChatbotQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /chatbot/upload-and-quiz [post]
func (h *PracticeHandler) UploadAndQuiz(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		return domain.NewInvalidInputError("No file provided")
	}
	if fileHeader.Filename == "" {
		return domain.NewInvalidInputError("No file selected")
	}

	content, err := readUpload(fileHeader)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	resp, err := h.service.UploadAndQuiz(c.UserContext(), middleware.SessionID(c), fileHeader.Filename, content)
	if err != nil {
		logger.Get().Error("Failed to quiz on upload",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		return err
	}
	return c.JSON(resp)
}

// QuizQuestions godoc
// @Summary Get the session's last quiz
// @Tags practice
// @Produce json
// @Success 200 {object} dto.QuizResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/questions [get]
func (h *PracticeHandler) QuizQuestions(c *fiber.Ctx) error {
	quiz, err := h.service.LastQuiz(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// SubmitQuiz godoc
// @Summary Grade the session's last quiz
// @Description Answers are option indexes, answer text or null for skipped questions. The quiz is forgotten once graded.
// @Tags practice
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuizRequest true "Answers in question order"
// @Success 200 {object} dto.QuizGradeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /chatbot/submit-quiz [post]
func (h *PracticeHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	answers, errs := h.validator.ValidateAnswers(req.Answers)
	if len(errs) > 0 {
		return errs
	}

	grade, err := h.service.SubmitQuiz(c.UserContext(), middleware.SessionID(c), answers)
	if err != nil {
		return err
	}
	return c.JSON(grade)
}
