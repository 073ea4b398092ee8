package services

import "github.com/silverkaki/silverkaki/internal/models"

type RecommendationService struct {
	activities RegistrationActivityReader
	users      RegistrationUserReader
}

func NewRecommendationService(activities RegistrationActivityReader, users RegistrationUserReader) *RecommendationService {
	return &RecommendationService{activities: activities, users: users}
}

// Recommend filters the catalog by the user's fall-risk safety predicate,
// then restricts to the user's interest categories. Callers re-sort by
// schedule before presenting.
func (service *RecommendationService) Recommend(userID string) ([]models.Activity, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	catalog, err := service.activities.List()
	if err != nil {
		return nil, err
	}

	tier := CalculateFallRisk(user)
	interests := make(map[string]bool, len(user.Interests))
	for _, interest := range user.Interests {
		interests[interest] = true
	}

	recommended := make([]models.Activity, 0)
	for _, activity := range catalog {
		if !SafeForRiskTier(activity, tier) {
			continue
		}
		if !interests[activity.Category] {
			continue
		}
		recommended = append(recommended, activity)
	}

	return recommended, nil
}
