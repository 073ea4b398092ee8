package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/silverkaki/silverkaki/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the service sentinels to HTTP responses. Unknown errors
// surface as 500 without leaking detail.
func serviceError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidInput):
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	case errors.Is(err, services.ErrInvalidTransition):
		return apiError(c, fiber.StatusConflict, message)
	case errors.Is(err, services.ErrOutOfWindow):
		return apiError(c, fiber.StatusConflict, "activity is no longer open")
	case errors.Is(err, services.ErrInsufficientPoints):
		return apiError(c, fiber.StatusConflict, "not enough points")
	case errors.Is(err, services.ErrIntensityConfirmation):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":                 "intensity confirmation required",
			"confirmation_required": true,
		})
	default:
		return apiError(c, fiber.StatusInternalServerError, message)
	}
}
