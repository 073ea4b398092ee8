package models

import "time"

const (
	ActivityLevelLow      = "low"
	ActivityLevelModerate = "moderate"
	ActivityLevelHigh     = "high"
)

const (
	GenderFemale = "female"
	GenderMale   = "male"
)

const BadgeFirstTimer = "first_timer"

// MaxHealthReadings caps each health reading list at the most recent entries.
const MaxHealthReadings = 30

type BloodPressureReading struct {
	Date      time.Time `json:"date"`
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Pulse     int       `json:"pulse,omitempty"`
}

type BloodSugarReading struct {
	Date  time.Time `json:"date"`
	Level float64   `json:"level"`
	Type  string    `json:"type"`
}

const (
	SugarReadingFasting   = "fasting"
	SugarReadingAfterMeal = "after_meal"
)

type WeightReading struct {
	Date time.Time `json:"date"`
	Kg   float64   `json:"kg"`
}

type User struct {
	ID               string `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Phone            string
	HomeAddress      string
	Gender           string
	ActivityLevel    string                 `gorm:"not null;default:moderate"`
	HasMobilityIssue bool                   `gorm:"not null;default:false"`
	HospitalVisits   int                    `gorm:"not null;default:0"`
	Points           int                    `gorm:"not null;default:0"`
	Interests        []string               `gorm:"serializer:json;not null;default:'[]'"`
	Badges           []string               `gorm:"serializer:json;not null;default:'[]'"`
	BloodPressure    []BloodPressureReading `gorm:"serializer:json;not null;default:'[]'"`
	BloodSugar       []BloodSugarReading    `gorm:"serializer:json;not null;default:'[]'"`
	Weight           []WeightReading        `gorm:"serializer:json;not null;default:'[]'"`
	LastVoucherRef   string
	LastVoucherDate  *time.Time
	JoinedAt         time.Time `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ActivityLevelRank orders activity levels for the intensity safety gate.
func ActivityLevelRank(level string) int {
	switch level {
	case ActivityLevelLow:
		return 1
	case ActivityLevelModerate:
		return 2
	case ActivityLevelHigh:
		return 3
	default:
		return 2
	}
}
