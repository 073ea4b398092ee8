package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/silverkaki/silverkaki/internal/models"
)

const (
	sessionCookieName = "silverkaki_session"
	contextUserKey    = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// ProfileRequired loads the selected profile from the session cookie. Every
// route past the profile picker runs behind it.
func (handler *Handler) ProfileRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no profile selected"})
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}
