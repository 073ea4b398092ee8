package services

import (
	"strings"

	"github.com/silverkaki/silverkaki/internal/models"
)

type ProfileUserRepository interface {
	List() ([]models.User, error)
	FindByID(userID string) (models.User, error)
	Create(user *models.User) error
}

type ProfileService struct {
	users    ProfileUserRepository
	notifier HealthNotifier
	clock    Clock
	newID    IDSource
}

func NewProfileService(users ProfileUserRepository, notifier HealthNotifier, clock Clock, newID IDSource) *ProfileService {
	if clock == nil {
		clock = SystemClock()
	}
	if newID == nil {
		newID = UUIDSource()
	}
	return &ProfileService{users: users, notifier: notifier, clock: clock, newID: newID}
}

func (service *ProfileService) ListProfiles() ([]models.User, error) {
	return service.users.List()
}

func (service *ProfileService) FindProfile(userID string) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, notFoundOr(err)
	}
	return user, nil
}

type NewProfileInput struct {
	Name             string
	Phone            string
	HomeAddress      string
	Gender           string
	ActivityLevel    string
	HasMobilityIssue bool
	Interests        []string
}

// CreateProfile registers a new member profile with a zero point balance,
// the starter badge, and a welcome notification.
func (service *ProfileService) CreateProfile(input NewProfileInput) (models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.User{}, ErrInvalidInput
	}

	level := input.ActivityLevel
	switch level {
	case models.ActivityLevelLow, models.ActivityLevelModerate, models.ActivityLevelHigh:
	case "":
		level = models.ActivityLevelModerate
	default:
		return models.User{}, ErrInvalidInput
	}

	interests := make([]string, 0, len(input.Interests))
	for _, interest := range input.Interests {
		trimmed := strings.TrimSpace(interest)
		if trimmed != "" {
			interests = append(interests, trimmed)
		}
	}

	now := service.clock.Now()
	user := models.User{
		ID:               service.newID(),
		Name:             name,
		Phone:            strings.TrimSpace(input.Phone),
		HomeAddress:      strings.TrimSpace(input.HomeAddress),
		Gender:           input.Gender,
		ActivityLevel:    level,
		HasMobilityIssue: input.HasMobilityIssue,
		Interests:        interests,
		Badges:           []string{models.BadgeFirstTimer},
		BloodPressure:    []models.BloodPressureReading{},
		BloodSugar:       []models.BloodSugarReading{},
		Weight:           []models.WeightReading{},
		JoinedAt:         now,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}

	if _, err := service.notifier.Emit(
		user.ID,
		models.NotificationWelcome,
		"Welcome to SilverKaki! 🎉",
		"Start by exploring activities and joining ones you like!",
		"🏡",
	); err != nil {
		return models.User{}, err
	}

	return user, nil
}
