package handler

import (
	"quizera/internal/domain"
	"quizera/internal/dto"
	"quizera/internal/service"
	"quizera/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// LeaderboardHandler records and lists finished games.
type LeaderboardHandler struct {
	service   service.LeaderboardService
	validator *validation.Validator
}

func NewLeaderboardHandler(service service.LeaderboardService, validator *validation.Validator) *LeaderboardHandler {
	return &LeaderboardHandler{
		service:   service,
		validator: validator,
	}
}

// SaveScore godoc
// @Summary Record a score
// @Description The server assigns the timestamp
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param request body dto.SaveScoreRequest true "Score"
// @Success 201 {object} dto.SaveScoreResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /score [post]
func (h *LeaderboardHandler) SaveScore(c *fiber.Ctx) error {
	var req dto.SaveScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	username, topic, errs := h.validator.ValidateScore(req)
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SaveScore(c.UserContext(), service.SaveScoreInput{
		Username: username,
		Score:    *req.Score,
		Topic:    topic,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetLeaderboard godoc
// @Summary List top scores
// @Tags leaderboard
// @Produce json
// @Param topic query string false "Only scores for this topic"
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	limit, errs := h.validator.ValidateLeaderboardLimit(c.Query("limit"))
	if len(errs) > 0 {
		return errs
	}
	resp, err := h.service.Leaderboard(c.UserContext(), c.Query("topic"), limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ClearLeaderboard godoc
// @Summary Remove every score
// @Tags leaderboard
// @Produce json
// @Success 200 {object} dto.ClearLeaderboardResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /leaderboard/clear [post]
func (h *LeaderboardHandler) ClearLeaderboard(c *fiber.Ctx) error {
	resp, err := h.service.ClearLeaderboard(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
