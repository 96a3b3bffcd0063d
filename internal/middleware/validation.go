package middleware

import (
	"quizera/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// LocalDocumentID is the fiber.Ctx locals key holding a validated document id.
const LocalDocumentID = "validated_document_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

// ValidateDocumentID rejects a malformed :id path parameter before the
// handler runs.
func (vm *ValidationMiddleware) ValidateDocumentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateDocumentID(id); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalDocumentID, id)
		return c.Next()
	}
}
