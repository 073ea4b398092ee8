package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/silverkaki/silverkaki/internal/models"
	"github.com/silverkaki/silverkaki/internal/services"
)

type activityView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	ExertionType    string `json:"exertion_type"`
	Intensity       string `json:"intensity"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	Instructor      string `json:"instructor,omitempty"`
	MaxParticipants int    `json:"max_participants"`
	Status          string `json:"status"`
}

func (handler *Handler) activityView(activity models.Activity, now time.Time) activityView {
	return activityView{
		ID:              activity.ID,
		Name:            activity.Name,
		Category:        activity.Category,
		ExertionType:    activity.ExertionType,
		Intensity:       activity.Intensity,
		StartsAt:        activity.StartsAt.In(handler.location).Format(time.RFC3339),
		EndsAt:          activity.EndsAt.In(handler.location).Format(time.RFC3339),
		Location:        activity.Location,
		Description:     activity.Description,
		Instructor:      activity.Instructor,
		MaxParticipants: activity.MaxParticipants,
		Status:          string(services.EvaluateActivityWindow(activity, now)),
	}
}

func (handler *Handler) activityViews(activities []models.Activity) []activityView {
	now := handler.clock.Now()
	views := make([]activityView, 0, len(activities))
	for _, activity := range activities {
		views = append(views, handler.activityView(activity, now))
	}
	return views
}

// ListActivities returns the catalog for the requested range. Without query
// parameters it covers today through the next two weeks.
func (handler *Handler) ListActivities(c *fiber.Ctx) error {
	now := handler.clock.Now().In(handler.location)
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, handler.location)
	to := from.AddDate(0, 0, 14)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid from date")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid to date")
		}
		to = parsed.AddDate(0, 0, 1)
	}

	activities, err := handler.repositories.Activities.ListByRange(from, to)
	if err != nil {
		return serviceError(c, err, "failed to load activities")
	}

	services.SortActivitiesBySchedule(activities)
	return c.JSON(fiber.Map{"activities": handler.activityViews(activities)})
}

func (handler *Handler) GetActivity(c *fiber.Ctx) error {
	activity, err := handler.repositories.Activities.FindByID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return c.JSON(handler.activityView(activity, handler.clock.Now()))
}

func (handler *Handler) RecommendedActivities(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	recommended, err := handler.recommender.Recommend(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to build recommendations")
	}

	// Past occurrences are not actionable.
	now := handler.clock.Now()
	upcoming := make([]models.Activity, 0, len(recommended))
	for _, activity := range recommended {
		if services.EvaluateActivityWindow(activity, now) == services.StatusUpcoming {
			upcoming = append(upcoming, activity)
		}
	}

	services.SortActivitiesBySchedule(upcoming)
	return c.JSON(fiber.Map{
		"risk_tier":  string(services.CalculateFallRisk(*user)),
		"activities": handler.activityViews(upcoming),
	})
}
