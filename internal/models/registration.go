package models

import "time"

// RegistrationState is the lifecycle position derived from a registration's
// persisted flags. Transitions only ever move forward; the sole way back is
// deleting the record before attendance is confirmed.
type RegistrationState string

const (
	StateRegistered        RegistrationState = "registered"
	StateFeedbackUnlocked  RegistrationState = "feedback_unlocked"
	StateFeedbackCompleted RegistrationState = "feedback_completed"
)

type Registration struct {
	ID                  string `gorm:"primaryKey"`
	UserID              string `gorm:"not null;uniqueIndex:uidx_user_activity"`
	ActivityID          string `gorm:"not null;uniqueIndex:uidx_user_activity"`
	RegisteredAt        time.Time `gorm:"not null"`
	Attended            bool      `gorm:"not null;default:false"`
	AttendanceConfirmed bool      `gorm:"not null;default:false"`
	AttendanceTime      *time.Time
	PointsAwarded       bool `gorm:"not null;default:false"`
	FeedbackUnlocked    bool `gorm:"not null;default:false"`
	FeedbackCompleted   bool `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// State collapses the stored flags into the explicit lifecycle position.
// Attendance confirmation and feedback unlock happen in the same transition,
// so a confirmed registration is always at least feedback-unlocked.
func (registration Registration) State() RegistrationState {
	switch {
	case registration.FeedbackCompleted:
		return StateFeedbackCompleted
	case registration.AttendanceConfirmed:
		return StateFeedbackUnlocked
	default:
		return StateRegistered
	}
}
