package services

import (
	"sort"
	"time"

	"github.com/silverkaki/silverkaki/internal/models"
)

// ActivityStatus positions an occurrence relative to the wall clock.
type ActivityStatus string

const (
	StatusUpcoming   ActivityStatus = "upcoming"
	StatusInProgress ActivityStatus = "in_progress"
	StatusEnded      ActivityStatus = "ended"
)

// EvaluateActivityWindow classifies an occurrence against the current time.
// Registration and unregistration are only permitted while Upcoming;
// attendance confirmation stays available from the start of the window.
func EvaluateActivityWindow(activity models.Activity, now time.Time) ActivityStatus {
	if !now.Before(activity.EndsAt) {
		return StatusEnded
	}
	if !now.Before(activity.StartsAt) {
		return StatusInProgress
	}
	return StatusUpcoming
}

// SortActivitiesBySchedule orders occurrences by start time, then ID for a
// stable order between occurrences sharing a slot.
func SortActivitiesBySchedule(activities []models.Activity) {
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].StartsAt.Equal(activities[j].StartsAt) {
			return activities[i].ID < activities[j].ID
		}
		return activities[i].StartsAt.Before(activities[j].StartsAt)
	})
}
