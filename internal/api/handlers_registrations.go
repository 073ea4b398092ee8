package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/silverkaki/silverkaki/internal/models"
	"github.com/silverkaki/silverkaki/internal/services"
)

type registrationView struct {
	ID                  string `json:"id"`
	ActivityID          string `json:"activity_id"`
	State               string `json:"state"`
	RegisteredAt        string `json:"registered_at"`
	AttendanceConfirmed bool   `json:"attendance_confirmed"`
	FeedbackCompleted   bool   `json:"feedback_completed"`
}

func registrationViewOf(registration models.Registration) registrationView {
	return registrationView{
		ID:                  registration.ID,
		ActivityID:          registration.ActivityID,
		State:               string(registration.State()),
		RegisteredAt:        registration.RegisteredAt.Format("2006-01-02 15:04"),
		AttendanceConfirmed: registration.AttendanceConfirmed,
		FeedbackCompleted:   registration.FeedbackCompleted,
	}
}

type registerInput struct {
	ConfirmIntensity bool `json:"confirm_intensity"`
}

func (handler *Handler) RegisterForActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	input := registerInput{}
	// An empty body means no override.
	_ = c.BodyParser(&input)

	activityID := c.Params("id")
	var registration models.Registration
	var err error
	if input.ConfirmIntensity {
		registration, err = handler.registrations.RegisterWithOverride(user.ID, activityID)
	} else {
		registration, err = handler.registrations.Register(user.ID, activityID)
	}
	if err != nil {
		return serviceError(c, err, "already registered")
	}

	return c.Status(fiber.StatusCreated).JSON(registrationViewOf(registration))
}

func (handler *Handler) UnregisterFromActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	if err := handler.registrations.Unregister(user.ID, c.Params("id")); err != nil {
		return serviceError(c, err, "cannot unregister after attendance")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ConfirmAttendance(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	registration, err := handler.registrations.ConfirmAttendance(user.ID, c.Params("id"))
	if err != nil {
		return serviceError(c, err, "attendance already confirmed")
	}

	return c.JSON(fiber.Map{
		"registration":   registrationViewOf(registration),
		"points_awarded": services.AttendancePointBonus,
	})
}

type feedbackInput struct {
	Enjoyment      int    `json:"enjoyment"`
	WouldJoinAgain bool   `json:"would_join_again"`
	Comments       string `json:"comments"`
}

func (handler *Handler) SubmitFeedback(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	input := feedbackInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.registrations.SubmitFeedback(user.ID, c.Params("id"), services.FeedbackInput{
		Enjoyment:      input.Enjoyment,
		WouldJoinAgain: input.WouldJoinAgain,
		Comments:       input.Comments,
	})
	if err != nil {
		return serviceError(c, err, "feedback already submitted")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"feedback_id":    entry.ID,
		"points_awarded": services.FeedbackPointBonus,
	})
}

func (handler *Handler) MyRegistrations(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	registrations, err := handler.registrations.ListUserRegistrations(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to load registrations")
	}

	views := make([]registrationView, 0, len(registrations))
	for _, registration := range registrations {
		views = append(views, registrationViewOf(registration))
	}
	return c.JSON(fiber.Map{"registrations": views})
}

func (handler *Handler) UpcomingActivities(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	upcoming, err := handler.registrations.UpcomingForUser(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to load upcoming activities")
	}
	return c.JSON(fiber.Map{"activities": handler.activityViews(upcoming)})
}

func (handler *Handler) PendingFeedback(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	pending, err := handler.registrations.PendingFeedback(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to load pending feedback")
	}

	views := make([]registrationView, 0, len(pending))
	for _, registration := range pending {
		views = append(views, registrationViewOf(registration))
	}
	return c.JSON(fiber.Map{"registrations": views})
}
