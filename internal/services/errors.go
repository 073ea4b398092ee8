package services

import "errors"

// Failure taxonomy shared by the lifecycle, ledger, and catalog operations.
// Handlers translate these into HTTP statuses; nothing here is retried.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid lifecycle transition")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrOutOfWindow        = errors.New("activity window closed")
	ErrInvalidInput       = errors.New("invalid input")

	// ErrIntensityConfirmation is returned when an activity's intensity
	// exceeds the user's activity level. The caller surfaces a warning and
	// may retry through the override entry point.
	ErrIntensityConfirmation = errors.New("intensity confirmation required")
)
