package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/silverkaki/silverkaki/internal/models"
	"github.com/silverkaki/silverkaki/internal/observability"
)

const (
	interestMatchDedupWindow = 24 * time.Hour
	interestMatchLookahead   = 3
	interestMatchSampleSize  = 3
)

type NotificationRepository interface {
	ListByUser(userID string) ([]models.Notification, error)
	FindByID(notificationID string) (models.Notification, error)
	CountUnread(userID string) (int64, error)
	ExistsRecentByType(userID string, notificationType string, cutoff time.Time) (bool, error)
	Create(notification *models.Notification) error
	MarkRead(notificationID string) error
	TrimToNewest(userID string, keep int) error
}

type NotificationService struct {
	notifications NotificationRepository
	activities    RegistrationActivityReader
	users         RegistrationUserReader
	clock         Clock
	newID         IDSource
}

func NewNotificationService(
	notifications NotificationRepository,
	activities RegistrationActivityReader,
	users RegistrationUserReader,
	clock Clock,
	newID IDSource,
) *NotificationService {
	if clock == nil {
		clock = SystemClock()
	}
	if newID == nil {
		newID = UUIDSource()
	}
	return &NotificationService{
		notifications: notifications,
		activities:    activities,
		users:         users,
		clock:         clock,
		newID:         newID,
	}
}

func (service *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return service.notifications.ListByUser(userID)
}

func (service *NotificationService) UnreadCount(userID string) (int64, error) {
	return service.notifications.CountUnread(userID)
}

func (service *NotificationService) MarkRead(userID string, notificationID string) error {
	notification, err := service.notifications.FindByID(notificationID)
	if err != nil {
		return notFoundOr(err)
	}
	if notification.UserID != userID {
		return ErrNotFound
	}
	return service.notifications.MarkRead(notificationID)
}

// Emit stores a notification for the user and trims the backlog to the
// retention cap.
func (service *NotificationService) Emit(userID string, notificationType string, title string, message string, icon string) (models.Notification, error) {
	notification := models.Notification{
		ID:        service.newID(),
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Message:   message,
		Icon:      icon,
		CreatedAt: service.clock.Now(),
	}
	if err := service.notifications.Create(&notification); err != nil {
		return models.Notification{}, err
	}
	if err := service.notifications.TrimToNewest(userID, models.MaxNotificationsPerUser); err != nil {
		return models.Notification{}, err
	}

	observability.RecordNotificationEmitted(notificationType)
	return notification, nil
}

// GenerateInterestMatches scans the catalog for the next three days and
// emits at most one aggregate interest-match notification per 24 hours.
// Returns false when nothing was emitted (no matches, no interests, or the
// dedup window is still open).
func (service *NotificationService) GenerateInterestMatches(userID string) (bool, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return false, notFoundOr(err)
	}
	if len(user.Interests) == 0 {
		return false, nil
	}

	interests := make(map[string]bool, len(user.Interests))
	for _, interest := range user.Interests {
		interests[interest] = true
	}

	now := service.clock.Now()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowEnd := windowStart.AddDate(0, 0, interestMatchLookahead+1)

	catalog, err := service.activities.List()
	if err != nil {
		return false, err
	}

	matches := make([]models.Activity, 0)
	for _, activity := range catalog {
		if activity.StartsAt.Before(windowStart) || !activity.StartsAt.Before(windowEnd) {
			continue
		}
		if !interests[activity.Category] {
			continue
		}
		matches = append(matches, activity)
	}
	if len(matches) == 0 {
		return false, nil
	}

	cutoff := now.Add(-interestMatchDedupWindow)
	recent, err := service.notifications.ExistsRecentByType(userID, models.NotificationInterestMatch, cutoff)
	if err != nil {
		return false, err
	}
	if recent {
		return false, nil
	}

	SortActivitiesBySchedule(matches)
	sampleCount := len(matches)
	if sampleCount > interestMatchSampleSize {
		sampleCount = interestMatchSampleSize
	}
	names := make([]string, 0, sampleCount)
	for _, activity := range matches[:sampleCount] {
		names = append(names, activity.Name)
	}

	message := fmt.Sprintf("%d activities matching your interests: %s", len(matches), strings.Join(names, ", "))
	if _, err := service.Emit(userID, models.NotificationInterestMatch, "Activities For You! 🎯", message, "⭐"); err != nil {
		return false, err
	}
	return true, nil
}
