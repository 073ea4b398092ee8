package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/silverkaki/silverkaki/internal/models"
	"github.com/silverkaki/silverkaki/internal/services"
)

type profileSummary struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Gender        string   `json:"gender"`
	ActivityLevel string   `json:"activity_level"`
	Points        int      `json:"points"`
	Badges        []string `json:"badges"`
	Interests     []string `json:"interests"`
}

func summarizeProfile(user models.User) profileSummary {
	return profileSummary{
		ID:            user.ID,
		Name:          user.Name,
		Gender:        user.Gender,
		ActivityLevel: user.ActivityLevel,
		Points:        user.Points,
		Badges:        user.Badges,
		Interests:     user.Interests,
	}
}

func (handler *Handler) ListProfiles(c *fiber.Ctx) error {
	users, err := handler.profiles.ListProfiles()
	if err != nil {
		return serviceError(c, err, "failed to load profiles")
	}

	summaries := make([]profileSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, summarizeProfile(user))
	}
	return c.JSON(fiber.Map{"profiles": summaries})
}

type createProfileInput struct {
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	HomeAddress      string   `json:"home_address"`
	Gender           string   `json:"gender"`
	ActivityLevel    string   `json:"activity_level"`
	HasMobilityIssue bool     `json:"has_mobility_issue"`
	Interests        []string `json:"interests"`
}

func (handler *Handler) CreateProfile(c *fiber.Ctx) error {
	input := createProfileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.profiles.CreateProfile(services.NewProfileInput{
		Name:             input.Name,
		Phone:            input.Phone,
		HomeAddress:      input.HomeAddress,
		Gender:           input.Gender,
		ActivityLevel:    input.ActivityLevel,
		HasMobilityIssue: input.HasMobilityIssue,
		Interests:        input.Interests,
	})
	if err != nil {
		return serviceError(c, err, "failed to create profile")
	}

	if err := handler.setSessionCookie(c, user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(summarizeProfile(user))
}

type selectProfileInput struct {
	UserID string `json:"user_id"`
}

func (handler *Handler) SelectProfile(c *fiber.Ctx) error {
	input := selectProfileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.profiles.FindProfile(input.UserID)
	if err != nil {
		return serviceError(c, err, "failed to select profile")
	}

	if err := handler.setSessionCookie(c, user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	// Switching profiles re-checks the catalog against the new profile's
	// interests; the 24h dedup keeps this from spamming.
	if _, err := handler.notifications.GenerateInterestMatches(user.ID); err != nil {
		log.Printf("interest match scan for %s failed: %v", user.ID, err)
	}

	return c.JSON(summarizeProfile(user))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CurrentProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}
	return c.JSON(summarizeProfile(*user))
}
