package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/silverkaki/silverkaki/internal/models"
)

type stubForumStore struct {
	items map[string]models.ForumPost
}

func (store *stubForumStore) List() ([]models.ForumPost, error) {
	out := make([]models.ForumPost, 0, len(store.items))
	for _, item := range store.items {
		out = append(out, item)
	}
	return out, nil
}

func (store *stubForumStore) ListByCategory(category string) ([]models.ForumPost, error) {
	out := make([]models.ForumPost, 0)
	for _, item := range store.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (store *stubForumStore) FindByID(postID string) (models.ForumPost, error) {
	item, ok := store.items[postID]
	if !ok {
		return models.ForumPost{}, ErrNotFound
	}
	return item, nil
}

func (store *stubForumStore) Create(post *models.ForumPost) error {
	store.items[post.ID] = *post
	return nil
}

func (store *stubForumStore) Save(post *models.ForumPost) error {
	store.items[post.ID] = *post
	return nil
}

func newForumFixture() (*ForumService, *stubForumStore) {
	store := &stubForumStore{items: map[string]models.ForumPost{}}
	counter := 0
	newID := func() string {
		counter++
		return fmt.Sprintf("forum_%d", counter)
	}
	clock := FixedClock(time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC))
	return NewForumService(store, clock, newID), store
}

func TestCreatePostAndListByCategory(t *testing.T) {
	service, _ := newForumFixture()

	if _, err := service.CreatePost("user_001", "exercise", "Chair exercises", "Chair Yoga is excellent!"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.CreatePost("user_002", "diabetes", "Sugar tips", "Walk after meals."); err != nil {
		t.Fatalf("create: %v", err)
	}

	posts, err := service.ListPosts("exercise")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Chair exercises" {
		t.Fatalf("unexpected category listing: %+v", posts)
	}

	all, err := service.ListPosts("all")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(all))
	}
}

func TestCreatePostValidates(t *testing.T) {
	service, _ := newForumFixture()

	if _, err := service.CreatePost("user_001", "exercise", "   ", "body"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
	if _, err := service.CreatePost("user_001", "", "Title", "body"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank category, got %v", err)
	}
}

func TestAddReply(t *testing.T) {
	service, store := newForumFixture()

	post, err := service.CreatePost("user_001", "heart", "BP question", "What works for you?")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	reply, err := service.AddReply("user_002", post.ID, "Less salt helped me.")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply.UserID != "user_002" {
		t.Fatalf("unexpected reply author %q", reply.UserID)
	}

	saved := store.items[post.ID]
	if len(saved.Replies) != 1 || saved.Replies[0].ID != reply.ID {
		t.Fatalf("reply not persisted: %+v", saved.Replies)
	}

	if _, err := service.AddReply("user_002", post.ID, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank reply, got %v", err)
	}
	if _, err := service.AddReply("user_002", "missing", "hello"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleLikeRoundTrip(t *testing.T) {
	service, store := newForumFixture()

	post, err := service.CreatePost("user_001", "social", "Tea time", "Join us for tea!")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	likes, err := service.ToggleLike("user_002", post.ID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if likes != 1 {
		t.Fatalf("expected 1 like, got %d", likes)
	}

	likes, err = service.ToggleLike("user_002", post.ID)
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if likes != 0 {
		t.Fatalf("expected 0 likes after toggle back, got %d", likes)
	}
	if got := store.items[post.ID]; len(got.LikedBy) != 0 {
		t.Fatalf("liked-by not cleared: %+v", got.LikedBy)
	}
}
