package services

import "github.com/silverkaki/silverkaki/internal/models"

type TransportAssignment struct {
	ETA    string `json:"eta"`
	Driver string `json:"driver"`
}

// RequestTransportAssist accepts pickup requests for mobility-impaired
// members only. Dispatch itself is out of scope; the assignment is a fixed
// stub the UI presents.
func RequestTransportAssist(user models.User) (TransportAssignment, error) {
	if !user.HasMobilityIssue {
		return TransportAssignment{}, ErrInvalidInput
	}
	return TransportAssignment{ETA: "5 minutes", Driver: "Mr. Ahmad"}, nil
}
