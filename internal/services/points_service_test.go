package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/silverkaki/silverkaki/internal/models"
)

type stubUserStore struct {
	items map[string]models.User
	saves int
}

func (store *stubUserStore) FindByID(userID string) (models.User, error) {
	item, ok := store.items[userID]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return item, nil
}

func (store *stubUserStore) Save(user *models.User) error {
	store.items[user.ID] = *user
	store.saves++
	return nil
}

func newPointsFixture(points int) (*PointsService, *stubUserStore) {
	store := &stubUserStore{items: map[string]models.User{
		"user_001": {ID: "user_001", Name: "Uncle Tan", Points: points},
	}}
	clock := FixedClock(time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC))
	return NewPointsService(store, clock), store
}

func TestAwardAccumulates(t *testing.T) {
	service, store := newPointsFixture(150)

	if err := service.Award("user_001", AttendancePointBonus, "Attended activity"); err != nil {
		t.Fatalf("award: %v", err)
	}
	if err := service.Award("user_001", FeedbackPointBonus, "Completed feedback survey"); err != nil {
		t.Fatalf("award: %v", err)
	}

	if got := store.items["user_001"].Points; got != 180 {
		t.Fatalf("expected 180 points, got %d", got)
	}
}

func TestAwardRejectsNegativeAmounts(t *testing.T) {
	service, store := newPointsFixture(150)

	if err := service.Award("user_001", -5, "oops"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := store.items["user_001"].Points; got != 150 {
		t.Fatalf("balance changed to %d", got)
	}
}

func TestAwardUnknownUser(t *testing.T) {
	service, _ := newPointsFixture(0)

	if err := service.Award("ghost", 10, "Attended activity"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRedeemVoucherAtExactThreshold(t *testing.T) {
	service, store := newPointsFixture(VoucherThreshold)

	redemption, err := service.RedeemVoucher("user_001")
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if redemption.Balance != 0 {
		t.Fatalf("expected zero balance, got %d", redemption.Balance)
	}
	if !strings.HasPrefix(redemption.Reference, "SK-") || len(redemption.Reference) != 9 {
		t.Fatalf("bad reference %q", redemption.Reference)
	}
	if redemption.RedeemedAt != "10 Mar 2026" {
		t.Fatalf("expected formatted date, got %q", redemption.RedeemedAt)
	}

	user := store.items["user_001"]
	if user.Points != 0 || user.LastVoucherRef != redemption.Reference || user.LastVoucherDate == nil {
		t.Fatalf("redemption not persisted: %+v", user)
	}
}

func TestRedeemVoucherBelowThresholdLeavesBalance(t *testing.T) {
	service, store := newPointsFixture(VoucherThreshold - 1)

	if _, err := service.RedeemVoucher("user_001"); !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("expected ErrInsufficientPoints, got %v", err)
	}

	user := store.items["user_001"]
	if user.Points != VoucherThreshold-1 {
		t.Fatalf("balance changed to %d", user.Points)
	}
	if user.LastVoucherRef != "" || store.saves != 0 {
		t.Fatalf("failed redemption left side effects: %+v", user)
	}
}

func TestRedeemVoucherReplacesPreviousReference(t *testing.T) {
	service, store := newPointsFixture(2 * VoucherThreshold)

	first, err := service.RedeemVoucher("user_001")
	if err != nil {
		t.Fatalf("first redeem: %v", err)
	}
	second, err := service.RedeemVoucher("user_001")
	if err != nil {
		t.Fatalf("second redeem: %v", err)
	}
	if first.Reference == second.Reference {
		t.Fatalf("expected distinct references, both %q", first.Reference)
	}
	if got := store.items["user_001"].LastVoucherRef; got != second.Reference {
		t.Fatalf("expected latest reference retained, got %q", got)
	}
}
