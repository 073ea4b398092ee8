package services

import (
	"log"

	"github.com/silverkaki/silverkaki/internal/models"
	"github.com/silverkaki/silverkaki/internal/observability"
	"github.com/silverkaki/silverkaki/internal/security"
)

// VoucherThreshold is the fixed point cost of one voucher redemption.
const VoucherThreshold = 200

type PointsUserRepository interface {
	FindByID(userID string) (models.User, error)
	Save(user *models.User) error
}

type PointsService struct {
	users PointsUserRepository
	clock Clock
}

func NewPointsService(users PointsUserRepository, clock Clock) *PointsService {
	if clock == nil {
		clock = SystemClock()
	}
	return &PointsService{users: users, clock: clock}
}

// Award adds points to the user's balance. Amounts are non-negative by
// design; there are no penalty flows.
func (service *PointsService) Award(userID string, amount int, reason string) error {
	if amount < 0 {
		return ErrInvalidInput
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return notFoundOr(err)
	}

	user.Points += amount
	if err := service.users.Save(&user); err != nil {
		return err
	}

	log.Printf("points: +%d for %s (%s)", amount, user.ID, reason)
	observability.RecordPointsAwarded(amount)
	return nil
}

type VoucherRedemption struct {
	Reference  string `json:"reference"`
	RedeemedAt string `json:"redeemed_at"`
	Balance    int    `json:"balance"`
}

// RedeemVoucher atomically deducts the threshold, stamps a fresh reference
// and date on the user, and returns the redemption. Only the most recent
// voucher reference is retained.
func (service *PointsService) RedeemVoucher(userID string) (VoucherRedemption, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return VoucherRedemption{}, notFoundOr(err)
	}

	if user.Points < VoucherThreshold {
		return VoucherRedemption{}, ErrInsufficientPoints
	}

	reference, err := security.VoucherReference()
	if err != nil {
		return VoucherRedemption{}, err
	}

	redeemedAt := service.clock.Now()
	user.Points -= VoucherThreshold
	user.LastVoucherRef = reference
	user.LastVoucherDate = &redeemedAt

	if err := service.users.Save(&user); err != nil {
		return VoucherRedemption{}, err
	}

	observability.RecordVoucherRedeemed()
	return VoucherRedemption{
		Reference:  reference,
		RedeemedAt: redeemedAt.Format("2 Jan 2006"),
		Balance:    user.Points,
	}, nil
}
