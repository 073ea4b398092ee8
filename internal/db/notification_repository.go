package db

import (
	"time"

	"github.com/silverkaki/silverkaki/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) ListByUser(userID string) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) FindByID(notificationID string) (models.Notification, error) {
	var notification models.Notification
	if err := repo.database.First(&notification, "id = ?", notificationID).Error; err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func (repo *NotificationRepository) CountUnread(userID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsRecentByType reports whether the user already has a notification of
// the given type newer than the cutoff. Drives the 24h dedup window.
func (repo *NotificationRepository) ExistsRecentByType(userID string, notificationType string, cutoff time.Time) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND type = ? AND created_at > ?", userID, notificationType, cutoff).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) MarkRead(notificationID string) error {
	return repo.database.Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Update("read", true).Error
}

// TrimToNewest deletes a user's oldest notifications beyond the keep count.
func (repo *NotificationRepository) TrimToNewest(userID string, keep int) error {
	if keep <= 0 {
		return nil
	}
	return repo.database.Exec(`
DELETE FROM notifications
WHERE user_id = ? AND id NOT IN (
  SELECT id FROM notifications
  WHERE user_id = ?
  ORDER BY created_at DESC, id DESC
  LIMIT ?
)`, userID, userID, keep).Error
}
