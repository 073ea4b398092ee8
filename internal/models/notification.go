package models

import "time"

const (
	NotificationWelcome       = "welcome"
	NotificationInterestMatch = "interest_match"
	NotificationHealthAlert   = "health_alert"
)

// MaxNotificationsPerUser caps how many notifications are retained per user.
const MaxNotificationsPerUser = 20

type Notification struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"not null;index"`
	Type      string `gorm:"not null"`
	Title     string `gorm:"not null"`
	Message   string
	Icon      string
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index"`
}
