package api

import (
	"time"

	"github.com/silverkaki/silverkaki/internal/db"
	"github.com/silverkaki/silverkaki/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories  *db.Repositories
	profiles      *services.ProfileService
	registrations *services.RegistrationService
	points        *services.PointsService
	notifications *services.NotificationService
	health        *services.HealthService
	recommender   *services.RecommendationService
	forum         *services.ForumService
	clock         services.Clock
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		clock:        services.SystemClock(),
	}
	handler.wireDependencies()
	return handler
}

func (handler *Handler) wireDependencies() {
	handler.repositories = db.NewRepositories(handler.db)
	repositories := handler.repositories

	handler.points = services.NewPointsService(repositories.Users, handler.clock)
	handler.notifications = services.NewNotificationService(
		repositories.Notifications,
		repositories.Activities,
		repositories.Users,
		handler.clock,
		nil,
	)
	handler.registrations = services.NewRegistrationService(
		repositories.Registrations,
		repositories.Activities,
		repositories.Users,
		repositories.Feedback,
		handler.points,
		handler.clock,
		nil,
	)
	handler.profiles = services.NewProfileService(repositories.Users, handler.notifications, handler.clock, nil)
	handler.health = services.NewHealthService(repositories.Users, handler.notifications, handler.clock)
	handler.recommender = services.NewRecommendationService(repositories.Activities, repositories.Users)
	handler.forum = services.NewForumService(repositories.ForumPosts, handler.clock, nil)
}
