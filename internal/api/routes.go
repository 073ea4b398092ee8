package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	profiles := api.Group("/profiles")
	profiles.Get("", handler.ListProfiles)
	profiles.Post("", handler.CreateProfile)
	profiles.Post("/select", handler.SelectProfile)
	profiles.Post("/logout", handler.Logout)
	profiles.Get("/me", handler.ProfileRequired, handler.CurrentProfile)

	activities := api.Group("/activities", handler.ProfileRequired)
	activities.Get("", handler.ListActivities)
	activities.Get("/recommended", handler.RecommendedActivities)
	activities.Get("/:id", handler.GetActivity)
	activities.Post("/:id/register", handler.RegisterForActivity)
	activities.Delete("/:id/register", handler.UnregisterFromActivity)
	activities.Post("/:id/attendance", handler.ConfirmAttendance)
	activities.Post("/:id/feedback", handler.SubmitFeedback)

	registrations := api.Group("/registrations", handler.ProfileRequired)
	registrations.Get("", handler.MyRegistrations)
	registrations.Get("/upcoming", handler.UpcomingActivities)
	registrations.Get("/pending-feedback", handler.PendingFeedback)

	rewards := api.Group("/rewards", handler.ProfileRequired)
	rewards.Get("", handler.RewardsSummary)
	rewards.Post("/redeem", handler.RedeemVoucher)

	health := api.Group("/health", handler.ProfileRequired)
	health.Get("/stats", handler.HealthStats)
	health.Post("/blood-pressure", handler.RecordBloodPressure)
	health.Post("/blood-sugar", handler.RecordBloodSugar)
	health.Post("/weight", handler.RecordWeight)

	notifications := api.Group("/notifications", handler.ProfileRequired)
	notifications.Get("", handler.ListNotifications)
	notifications.Get("/unread-count", handler.UnreadNotificationCount)
	notifications.Post("/generate", handler.GenerateInterestMatches)
	notifications.Post("/:id/read", handler.MarkNotificationRead)

	forum := api.Group("/forum", handler.ProfileRequired)
	forum.Get("/categories", handler.ForumCategories)
	forum.Get("/posts", handler.ListForumPosts)
	forum.Post("/posts", handler.CreateForumPost)
	forum.Get("/posts/:id", handler.GetForumPost)
	forum.Post("/posts/:id/replies", handler.AddForumReply)
	forum.Post("/posts/:id/like", handler.ToggleForumLike)

	api.Post("/transport/request", handler.ProfileRequired, handler.RequestTransport)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
