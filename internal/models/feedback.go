package models

import "time"

const (
	MinEnjoymentScore = 1
	MaxEnjoymentScore = 5
)

// Feedback is the post-activity survey; at most one per registration.
type Feedback struct {
	ID             string `gorm:"primaryKey"`
	UserID         string `gorm:"not null;index"`
	ActivityID     string `gorm:"not null;index"`
	Enjoyment      int    `gorm:"not null"`
	WouldJoinAgain bool   `gorm:"not null;default:false"`
	Comments       string
	SubmittedAt    time.Time `gorm:"not null"`
}
