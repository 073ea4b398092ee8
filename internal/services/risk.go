package services

import "github.com/silverkaki/silverkaki/internal/models"

// RiskTier is the coarse fall-risk classification gating recommendations.
type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskModerate RiskTier = "moderate"
	RiskHigh     RiskTier = "high"
)

// CalculateFallRisk scores the user's frailty indicators. Mobility issues
// weigh heaviest, then a sedentary activity level, then hospital history.
// Deterministic for any well-formed user record.
func CalculateFallRisk(user models.User) RiskTier {
	score := 0

	if user.HasMobilityIssue {
		score += 3
	}

	switch user.ActivityLevel {
	case models.ActivityLevelLow:
		score += 2
	case models.ActivityLevelModerate:
		score += 1
	}

	if user.HospitalVisits >= 2 {
		score += 2
	} else if user.HospitalVisits == 1 {
		score += 1
	}

	switch {
	case score >= 4:
		return RiskHigh
	case score >= 2:
		return RiskModerate
	default:
		return RiskLow
	}
}

// SafeForRiskTier is the safety predicate applied before interest matching.
// High risk admits seated activities only, with an exception for education
// sessions; moderate risk rules out walking activities.
func SafeForRiskTier(activity models.Activity, tier RiskTier) bool {
	switch tier {
	case RiskHigh:
		return activity.ExertionType == models.ExertionSit || activity.Category == "education"
	case RiskModerate:
		return activity.ExertionType != models.ExertionWalk
	default:
		return true
	}
}
