package handler

import (
	"quizera/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts every quiz route on app.
func RegisterRoutes(app *fiber.App, h *QuizHandler, vm *middleware.ValidationMiddleware) {
	app.Get("/test", h.Test)

	api := app.Group("/api")
	api.Post("/upload-pdf", h.UploadPDF)
	api.Post("/generate-quiz", h.GenerateQuiz)

	api.Get("/documents/:id", vm.ValidateDocumentID(), h.GetDocument)
	api.Get("/documents/:id/quizzes", vm.ValidateDocumentID(), h.ListGenerations)
}

// RegisterPracticeRoutes mounts the session quiz routes behind session.
func RegisterPracticeRoutes(app *fiber.App, h *PracticeHandler, session fiber.Handler) {
	quiz := app.Group("/api/quiz", session)
	quiz.Post("/generate-topic", h.TopicQuiz)
	quiz.Get("/questions", h.QuizQuestions)

	chatbot := app.Group("/api/chatbot", session)
	chatbot.Post("/upload-and-quiz", h.UploadAndQuiz)
	chatbot.Post("/submit-quiz", h.SubmitQuiz)
}

func RegisterLeaderboardRoutes(app *fiber.App, h *LeaderboardHandler) {
	api := app.Group("/api")
	api.Post("/score", h.SaveScore)
	api.Get("/leaderboard", h.GetLeaderboard)
	api.Post("/leaderboard/clear", h.ClearLeaderboard)
}

func RegisterHealthRoutes(app *fiber.App, h *HealthHandler) {
	app.Get("/health", h.Health)
}
