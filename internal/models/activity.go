package models

import "time"

const (
	ExertionSit   = "sit"
	ExertionStand = "stand"
	ExertionWalk  = "walk"
)

const (
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
)

// Activity is a single dated occurrence of a recurring programme slot.
// Occurrences are generated by the catalog seeder and never edited afterwards.
type Activity struct {
	ID                  string `gorm:"primaryKey"`
	Name                string `gorm:"not null"`
	Category            string `gorm:"not null;index"`
	ExertionType        string `gorm:"not null"`
	Intensity           string `gorm:"not null;default:low"`
	StartsAt            time.Time `gorm:"not null;index"`
	EndsAt              time.Time `gorm:"not null"`
	Location            string
	Description         string
	Instructor          string
	MaxParticipants     int `gorm:"not null;default:0"`
	CurrentParticipants int `gorm:"not null;default:0"`
	CreatedAt           time.Time
}

// IntensityRank mirrors ActivityLevelRank so the two scales compare ordinally.
func IntensityRank(intensity string) int {
	switch intensity {
	case IntensityLow:
		return 1
	case IntensityModerate:
		return 2
	case IntensityHigh:
		return 3
	default:
		return 1
	}
}
