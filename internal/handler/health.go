package handler

import (
	"quizera/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	service service.HealthService
}

func NewHealthHandler(service service.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Health godoc
// @Summary Readiness check
// @Description Pings the configured cache and database
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := h.service.Check(c.UserContext())
	status := fiber.StatusOK
	if resp.Status != service.HealthStatusOK {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
