package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	notifications, err := handler.notifications.ListForUser(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to load notifications")
	}
	return c.JSON(fiber.Map{"notifications": notifications})
}

func (handler *Handler) UnreadNotificationCount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	count, err := handler.notifications.UnreadCount(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to count notifications")
	}
	return c.JSON(fiber.Map{"unread": count})
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	if err := handler.notifications.MarkRead(user.ID, c.Params("id")); err != nil {
		return serviceError(c, err, "failed to mark notification")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// GenerateInterestMatches is called by the client on dashboard load; the
// service dedups so polling stays cheap.
func (handler *Handler) GenerateInterestMatches(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	emitted, err := handler.notifications.GenerateInterestMatches(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to scan for matches")
	}
	return c.JSON(fiber.Map{"emitted": emitted})
}
