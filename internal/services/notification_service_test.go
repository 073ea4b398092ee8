package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/silverkaki/silverkaki/internal/models"
)

type stubNotificationStore struct {
	items []models.Notification
}

func (store *stubNotificationStore) ListByUser(userID string) ([]models.Notification, error) {
	out := make([]models.Notification, 0)
	for _, item := range store.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (store *stubNotificationStore) FindByID(notificationID string) (models.Notification, error) {
	for _, item := range store.items {
		if item.ID == notificationID {
			return item, nil
		}
	}
	return models.Notification{}, ErrNotFound
}

func (store *stubNotificationStore) CountUnread(userID string) (int64, error) {
	var count int64
	for _, item := range store.items {
		if item.UserID == userID && !item.Read {
			count++
		}
	}
	return count, nil
}

func (store *stubNotificationStore) ExistsRecentByType(userID string, notificationType string, cutoff time.Time) (bool, error) {
	for _, item := range store.items {
		if item.UserID == userID && item.Type == notificationType && item.CreatedAt.After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

func (store *stubNotificationStore) Create(notification *models.Notification) error {
	store.items = append(store.items, *notification)
	return nil
}

func (store *stubNotificationStore) MarkRead(notificationID string) error {
	for index := range store.items {
		if store.items[index].ID == notificationID {
			store.items[index].Read = true
			return nil
		}
	}
	return ErrNotFound
}

func (store *stubNotificationStore) TrimToNewest(userID string, keep int) error {
	kept, err := store.ListByUser(userID)
	if err != nil {
		return err
	}
	if len(kept) <= keep {
		return nil
	}
	drop := map[string]bool{}
	for _, item := range kept[keep:] {
		drop[item.ID] = true
	}
	remaining := store.items[:0]
	for _, item := range store.items {
		if !drop[item.ID] {
			remaining = append(remaining, item)
		}
	}
	store.items = remaining
	return nil
}

func newNotificationFixture(interests []string) (*NotificationService, *stubNotificationStore, time.Time) {
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	store := &stubNotificationStore{}
	activities := &stubActivityReader{items: map[string]models.Activity{
		"tai-chi-today": {
			ID: "tai-chi-today", Name: "Morning Tai Chi", Category: "tai-chi",
			StartsAt: now.Add(2 * time.Hour), EndsAt: now.Add(4 * time.Hour),
		},
		"tai-chi-later": {
			ID: "tai-chi-later", Name: "Morning Tai Chi", Category: "tai-chi",
			StartsAt: now.AddDate(0, 0, 2), EndsAt: now.AddDate(0, 0, 2).Add(2 * time.Hour),
		},
		"tai-chi-far": {
			ID: "tai-chi-far", Name: "Morning Tai Chi", Category: "tai-chi",
			StartsAt: now.AddDate(0, 0, 10), EndsAt: now.AddDate(0, 0, 10).Add(2 * time.Hour),
		},
		"cooking-soon": {
			ID: "cooking-soon", Name: "Healthy Cooking Class", Category: "cooking",
			StartsAt: now.AddDate(0, 0, 1), EndsAt: now.AddDate(0, 0, 1).Add(2 * time.Hour),
		},
	}}
	users := &stubUserReader{items: map[string]models.User{
		"user_001": {ID: "user_001", Name: "Uncle Tan", Interests: interests},
	}}

	counter := 0
	newID := func() string {
		counter++
		return fmt.Sprintf("notif_%d", counter)
	}

	service := NewNotificationService(store, activities, users, FixedClock(now), newID)
	return service, store, now
}

func TestGenerateInterestMatchesEmitsAggregate(t *testing.T) {
	service, store, _ := newNotificationFixture([]string{"tai-chi"})

	emitted, err := service.GenerateInterestMatches("user_001")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !emitted {
		t.Fatal("expected a notification to be emitted")
	}
	if len(store.items) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(store.items))
	}

	notification := store.items[0]
	if notification.Type != models.NotificationInterestMatch {
		t.Fatalf("unexpected type %q", notification.Type)
	}
	// tai-chi-far is outside the lookahead window.
	if !strings.HasPrefix(notification.Message, "2 activities matching your interests:") {
		t.Fatalf("unexpected message %q", notification.Message)
	}
}

func TestGenerateInterestMatchesDedupWindow(t *testing.T) {
	service, store, _ := newNotificationFixture([]string{"tai-chi", "cooking"})

	first, err := service.GenerateInterestMatches("user_001")
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	if !first {
		t.Fatal("expected first call to emit")
	}

	second, err := service.GenerateInterestMatches("user_001")
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if second {
		t.Fatal("expected second call to be deduplicated")
	}
	if len(store.items) != 1 {
		t.Fatalf("expected 1 notification after dedup, got %d", len(store.items))
	}
}

func TestGenerateInterestMatchesNoInterests(t *testing.T) {
	service, store, _ := newNotificationFixture(nil)

	emitted, err := service.GenerateInterestMatches("user_001")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if emitted || len(store.items) != 0 {
		t.Fatalf("expected nothing emitted, got %d notifications", len(store.items))
	}
}

func TestEmitTrimsBacklog(t *testing.T) {
	service, store, _ := newNotificationFixture(nil)

	for i := 0; i < models.MaxNotificationsPerUser+5; i++ {
		if _, err := service.Emit("user_001", models.NotificationWelcome, "Hello", "msg", "👋"); err != nil {
			t.Fatalf("emit %d: %v", i, err)
		}
	}

	if len(store.items) != models.MaxNotificationsPerUser {
		t.Fatalf("expected backlog capped at %d, got %d", models.MaxNotificationsPerUser, len(store.items))
	}
}

func TestMarkReadChecksOwnership(t *testing.T) {
	service, store, now := newNotificationFixture(nil)

	store.items = append(store.items, models.Notification{
		ID: "notif_other", UserID: "user_999", Type: models.NotificationWelcome, CreatedAt: now,
	})

	if err := service.MarkRead("user_001", "notif_other"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign notification, got %v", err)
	}

	notification, err := service.Emit("user_001", models.NotificationWelcome, "Hello", "msg", "👋")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := service.MarkRead("user_001", notification.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	count, err := service.UnreadCount("user_001")
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 unread, got %d", count)
	}
}
