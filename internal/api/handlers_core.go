package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/silverkaki/silverkaki/internal/services"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	if err := healthCheckDatabase(handler); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func healthCheckDatabase(handler *Handler) error {
	sqlDB, err := handler.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (handler *Handler) RequestTransport(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	assignment, err := services.RequestTransportAssist(*user)
	if err != nil {
		return serviceError(c, err, "transport assist unavailable")
	}
	return c.JSON(assignment)
}
