package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"quizera/internal/domain"
	"quizera/internal/dto"
	"quizera/internal/logger"
	"quizera/internal/middleware"
	"quizera/internal/service"
	"quizera/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	formFieldPDF          = "pdf"
	formFieldPDFID        = "pdf_id"
	formFieldQuizType     = "quiz_type"
	formFieldDifficulty   = "difficulty"
	formFieldNumQuestions = "num_questions"

	defaultQuizType   = "1"
	defaultDifficulty = "2"
)

// QuizHandler handles document upload and quiz generation HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// Test godoc
// @Summary Connectivity check
// @Tags health
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /test [get]
func (h *QuizHandler) Test(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{
		Message: "Server is working!",
		Status:  "success",
	})
}

// UploadPDF godoc
// @Summary Upload a PDF
// @Description Extracts and stores the text of a PDF so later quizzes can reference it by pdf_id
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF document"
// @Success 200 {object} dto.UploadDocumentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /upload-pdf [post]
func (h *QuizHandler) UploadPDF(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(formFieldPDF)
	if err != nil {
		return domain.NewInvalidInputError("No PDF file provided")
	}
	if fileHeader.Filename == "" {
		return domain.NewInvalidInputError("No file selected")
	}

	content, err := readUpload(fileHeader)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	resp, err := h.service.UploadDocument(c.UserContext(), fileHeader.Filename, content)
	if err != nil {
		logger.Get().Error("Failed to upload document",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err),
		)
		return err
	}
	return c.JSON(resp)
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates a quiz from a stored document (pdf_id) or an attached PDF
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param pdf_id formData string false "Identifier returned by /upload-pdf"
// @Param pdf formData file false "PDF document, used when pdf_id is absent or unknown"
// @Param quiz_type formData string false "1 MCQ, 2 fill in the blanks, 3 true/false, 4 short answer, 5 long answer, 6 mixed" default(1)
// @Param difficulty formData string false "1 easy, 2 medium, 3 hard" default(2)
// @Param num_questions formData int false "Number of questions" default(5)
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /generate-quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	count, errs := h.validator.ValidateQuestionCount(c.FormValue(formFieldNumQuestions))
	if len(errs) > 0 {
		return errs
	}

	input := service.GenerateQuizInput{
		DocumentID:    c.FormValue(formFieldPDFID),
		QuestionType:  domain.ParseQuestionType(c.FormValue(formFieldQuizType, defaultQuizType)),
		Difficulty:    domain.ParseDifficulty(c.FormValue(formFieldDifficulty, defaultDifficulty)),
		QuestionCount: count,
	}

	if fileHeader, err := c.FormFile(formFieldPDF); err == nil {
		content, err := readUpload(fileHeader)
		if err != nil {
			return domain.NewInternalError("Failed to read uploaded file", err)
		}
		input.Filename = fileHeader.Filename
		input.Content = content
	}

	quiz, err := h.service.GenerateQuiz(c.UserContext(), input)
	if err != nil {
		logger.Get().Error("Failed to generate quiz",
			zap.String("pdf_id", input.DocumentID),
			zap.Int("quiz_type", int(input.QuestionType)),
			zap.Int("num_questions", input.QuestionCount),
			zap.Error(err),
		)
		return err
	}
	return c.JSON(quiz)
}

// GetDocument godoc
// @Summary Get document metadata
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /documents/{id} [get]
func (h *QuizHandler) GetDocument(c *fiber.Ctx) error {
	id := documentID(c)
	doc, err := h.service.GetDocument(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(doc)
}

// ListGenerations godoc
// @Summary List quizzes generated from a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {array} dto.GenerationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /documents/{id}/quizzes [get]
func (h *QuizHandler) ListGenerations(c *fiber.Ctx) error {
	gens, err := h.service.ListGenerations(c.UserContext(), documentID(c))
	if err != nil {
		return err
	}
	return c.JSON(gens)
}

func documentID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalDocumentID).(string); ok {
		return id
	}
	return c.Params("id")
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fileHeader.Filename, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}
