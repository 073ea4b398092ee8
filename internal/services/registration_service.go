package services

import (
	"errors"

	"github.com/silverkaki/silverkaki/internal/models"
	"github.com/silverkaki/silverkaki/internal/observability"
	"gorm.io/gorm"
)

const (
	AttendancePointBonus = 10
	FeedbackPointBonus   = 20
)

type RegistrationRepository interface {
	ListByUser(userID string) ([]models.Registration, error)
	FindByUserAndActivity(userID string, activityID string) (models.Registration, bool, error)
	Create(registration *models.Registration) error
	Save(registration *models.Registration) error
	DeleteByUserAndActivity(userID string, activityID string) error
}

type RegistrationActivityReader interface {
	FindByID(activityID string) (models.Activity, error)
	List() ([]models.Activity, error)
}

type RegistrationUserReader interface {
	FindByID(userID string) (models.User, error)
}

type FeedbackWriter interface {
	Create(entry *models.Feedback) error
}

// PointsLedger awards lifecycle bonuses. The registration flags guard the
// exactly-once property; the ledger only ever sees non-negative amounts.
type PointsLedger interface {
	Award(userID string, amount int, reason string) error
}

type RegistrationService struct {
	registrations RegistrationRepository
	activities    RegistrationActivityReader
	users         RegistrationUserReader
	feedback      FeedbackWriter
	ledger        PointsLedger
	clock         Clock
	newID         IDSource
}

func NewRegistrationService(
	registrations RegistrationRepository,
	activities RegistrationActivityReader,
	users RegistrationUserReader,
	feedback FeedbackWriter,
	ledger PointsLedger,
	clock Clock,
	newID IDSource,
) *RegistrationService {
	if clock == nil {
		clock = SystemClock()
	}
	if newID == nil {
		newID = UUIDSource()
	}
	return &RegistrationService{
		registrations: registrations,
		activities:    activities,
		users:         users,
		feedback:      feedback,
		ledger:        ledger,
		clock:         clock,
		newID:         newID,
	}
}

// Register creates a registration for an upcoming activity. When the
// activity's intensity exceeds the user's activity level the call fails with
// ErrIntensityConfirmation; RegisterWithOverride skips that gate only.
func (service *RegistrationService) Register(userID string, activityID string) (models.Registration, error) {
	return service.register(userID, activityID, false)
}

// RegisterWithOverride bypasses the intensity safety gate after the user has
// explicitly confirmed the warning. Every other rule still applies.
func (service *RegistrationService) RegisterWithOverride(userID string, activityID string) (models.Registration, error) {
	return service.register(userID, activityID, true)
}

func (service *RegistrationService) register(userID string, activityID string, overrideIntensityGate bool) (models.Registration, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.Registration{}, notFoundOr(err)
	}

	activity, err := service.activities.FindByID(activityID)
	if err != nil {
		return models.Registration{}, notFoundOr(err)
	}

	if EvaluateActivityWindow(activity, service.clock.Now()) != StatusUpcoming {
		return models.Registration{}, ErrOutOfWindow
	}

	if _, exists, err := service.registrations.FindByUserAndActivity(userID, activityID); err != nil {
		return models.Registration{}, err
	} else if exists {
		return models.Registration{}, ErrInvalidTransition
	}

	if !overrideIntensityGate {
		if models.IntensityRank(activity.Intensity) > models.ActivityLevelRank(user.ActivityLevel) {
			return models.Registration{}, ErrIntensityConfirmation
		}
	}

	registration := models.Registration{
		ID:           service.newID(),
		UserID:       userID,
		ActivityID:   activityID,
		RegisteredAt: service.clock.Now(),
	}
	if err := service.registrations.Create(&registration); err != nil {
		return models.Registration{}, err
	}

	observability.RecordRegistrationCreated()
	return registration, nil
}

// Unregister removes the registration entirely. Disallowed once attendance
// is confirmed, so awarded points cannot be orphaned, and disallowed outside
// the Upcoming window.
func (service *RegistrationService) Unregister(userID string, activityID string) error {
	registration, exists, err := service.registrations.FindByUserAndActivity(userID, activityID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	if registration.AttendanceConfirmed {
		return ErrInvalidTransition
	}

	activity, err := service.activities.FindByID(activityID)
	if err == nil {
		if EvaluateActivityWindow(activity, service.clock.Now()) != StatusUpcoming {
			return ErrOutOfWindow
		}
	}
	// A registration pointing at a deleted activity may still be removed.

	return service.registrations.DeleteByUserAndActivity(userID, activityID)
}

// ConfirmAttendance marks attendance, awards the attendance bonus exactly
// once, and unlocks feedback immediately. Calling it again is a rejected
// no-op rather than a double award.
func (service *RegistrationService) ConfirmAttendance(userID string, activityID string) (models.Registration, error) {
	registration, exists, err := service.registrations.FindByUserAndActivity(userID, activityID)
	if err != nil {
		return models.Registration{}, err
	}
	if !exists {
		return models.Registration{}, ErrNotFound
	}
	if registration.AttendanceConfirmed {
		return models.Registration{}, ErrInvalidTransition
	}

	now := service.clock.Now()
	registration.Attended = true
	registration.AttendanceConfirmed = true
	registration.AttendanceTime = &now
	registration.FeedbackUnlocked = true

	awardPending := !registration.PointsAwarded
	registration.PointsAwarded = true

	if err := service.registrations.Save(&registration); err != nil {
		return models.Registration{}, err
	}

	if awardPending {
		if err := service.ledger.Award(userID, AttendancePointBonus, "Attended activity"); err != nil {
			return models.Registration{}, err
		}
	}

	observability.RecordAttendanceConfirmed()
	return registration, nil
}

type FeedbackInput struct {
	Enjoyment      int
	WouldJoinAgain bool
	Comments       string
}

// SubmitFeedback records the survey, completes the lifecycle, and awards the
// feedback bonus exactly once. Replays against a completed registration are
// rejected.
func (service *RegistrationService) SubmitFeedback(userID string, activityID string, input FeedbackInput) (models.Feedback, error) {
	if input.Enjoyment < models.MinEnjoymentScore || input.Enjoyment > models.MaxEnjoymentScore {
		return models.Feedback{}, ErrInvalidInput
	}

	registration, exists, err := service.registrations.FindByUserAndActivity(userID, activityID)
	if err != nil {
		return models.Feedback{}, err
	}
	if !exists {
		return models.Feedback{}, ErrNotFound
	}
	if !registration.FeedbackUnlocked || registration.FeedbackCompleted {
		return models.Feedback{}, ErrInvalidTransition
	}

	entry := models.Feedback{
		ID:             service.newID(),
		UserID:         userID,
		ActivityID:     activityID,
		Enjoyment:      input.Enjoyment,
		WouldJoinAgain: input.WouldJoinAgain,
		Comments:       input.Comments,
		SubmittedAt:    service.clock.Now(),
	}
	if err := service.feedback.Create(&entry); err != nil {
		return models.Feedback{}, err
	}

	registration.FeedbackCompleted = true
	if err := service.registrations.Save(&registration); err != nil {
		return models.Feedback{}, err
	}

	if err := service.ledger.Award(userID, FeedbackPointBonus, "Completed feedback survey"); err != nil {
		return models.Feedback{}, err
	}

	return entry, nil
}

// ListUserRegistrations returns all of a user's registrations in
// registration order.
func (service *RegistrationService) ListUserRegistrations(userID string) ([]models.Registration, error) {
	return service.registrations.ListByUser(userID)
}

// PendingFeedback lists registrations awaiting a survey.
func (service *RegistrationService) PendingFeedback(userID string) ([]models.Registration, error) {
	registrations, err := service.registrations.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	pending := make([]models.Registration, 0)
	for _, registration := range registrations {
		if registration.AttendanceConfirmed && registration.FeedbackUnlocked && !registration.FeedbackCompleted {
			pending = append(pending, registration)
		}
	}
	return pending, nil
}

// UpcomingForUser resolves a user's registrations to activities whose window
// has not yet ended, sorted by schedule. Registrations pointing at a removed
// activity are skipped.
func (service *RegistrationService) UpcomingForUser(userID string) ([]models.Activity, error) {
	registrations, err := service.registrations.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	now := service.clock.Now()
	upcoming := make([]models.Activity, 0)
	for _, registration := range registrations {
		activity, err := service.activities.FindByID(registration.ActivityID)
		if err != nil {
			continue
		}
		if EvaluateActivityWindow(activity, now) == StatusEnded {
			continue
		}
		upcoming = append(upcoming, activity)
	}

	SortActivitiesBySchedule(upcoming)
	return upcoming, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
