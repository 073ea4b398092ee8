package services

import (
	"errors"
	"testing"
	"time"

	"github.com/silverkaki/silverkaki/internal/models"
)

type stubProfileStore struct {
	items map[string]models.User
}

func (store *stubProfileStore) List() ([]models.User, error) {
	out := make([]models.User, 0, len(store.items))
	for _, item := range store.items {
		out = append(out, item)
	}
	return out, nil
}

func (store *stubProfileStore) FindByID(userID string) (models.User, error) {
	item, ok := store.items[userID]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return item, nil
}

func (store *stubProfileStore) Create(user *models.User) error {
	store.items[user.ID] = *user
	return nil
}

func newProfileFixture() (*ProfileService, *stubProfileStore, *stubHealthNotifier) {
	store := &stubProfileStore{items: map[string]models.User{}}
	notifier := &stubHealthNotifier{}
	clock := FixedClock(time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC))
	newID := func() string { return "user_new" }
	return NewProfileService(store, notifier, clock, newID), store, notifier
}

func TestCreateProfile(t *testing.T) {
	service, store, notifier := newProfileFixture()

	user, err := service.CreateProfile(NewProfileInput{
		Name:          "  Auntie May  ",
		Phone:         "9111 2222",
		ActivityLevel: models.ActivityLevelHigh,
		Interests:     []string{"dance", " cooking ", ""},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if user.Name != "Auntie May" {
		t.Fatalf("name not trimmed: %q", user.Name)
	}
	if user.Points != 0 {
		t.Fatalf("expected zero starting balance, got %d", user.Points)
	}
	if len(user.Badges) != 1 || user.Badges[0] != models.BadgeFirstTimer {
		t.Fatalf("expected starter badge only, got %v", user.Badges)
	}
	if len(user.Interests) != 2 || user.Interests[1] != "cooking" {
		t.Fatalf("interests not cleaned: %v", user.Interests)
	}
	if _, ok := store.items[user.ID]; !ok {
		t.Fatal("profile not persisted")
	}
	if len(notifier.emitted) != 1 || notifier.emitted[0].Type != models.NotificationWelcome {
		t.Fatalf("expected one welcome notification, got %+v", notifier.emitted)
	}
}

func TestCreateProfileDefaultsActivityLevel(t *testing.T) {
	service, _, _ := newProfileFixture()

	user, err := service.CreateProfile(NewProfileInput{Name: "Uncle Bob"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ActivityLevel != models.ActivityLevelModerate {
		t.Fatalf("expected moderate default, got %q", user.ActivityLevel)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	service, _, _ := newProfileFixture()

	if _, err := service.CreateProfile(NewProfileInput{Name: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := service.CreateProfile(NewProfileInput{Name: "Uncle Bob", ActivityLevel: "extreme"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad level, got %v", err)
	}
}

func TestFindProfile(t *testing.T) {
	service, store, _ := newProfileFixture()
	store.items["user_001"] = models.User{ID: "user_001", Name: "Uncle Tan"}

	user, err := service.FindProfile("user_001")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if user.Name != "Uncle Tan" {
		t.Fatalf("unexpected profile %+v", user)
	}

	if _, err := service.FindProfile("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
