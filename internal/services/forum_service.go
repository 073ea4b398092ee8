package services

import (
	"strings"

	"github.com/silverkaki/silverkaki/internal/models"
)

type ForumRepository interface {
	List() ([]models.ForumPost, error)
	ListByCategory(category string) ([]models.ForumPost, error)
	FindByID(postID string) (models.ForumPost, error)
	Create(post *models.ForumPost) error
	Save(post *models.ForumPost) error
}

type ForumService struct {
	posts ForumRepository
	clock Clock
	newID IDSource
}

func NewForumService(posts ForumRepository, clock Clock, newID IDSource) *ForumService {
	if clock == nil {
		clock = SystemClock()
	}
	if newID == nil {
		newID = UUIDSource()
	}
	return &ForumService{posts: posts, clock: clock, newID: newID}
}

// ListPosts returns posts newest first, optionally filtered by category.
// "all" and the empty string mean no filter.
func (service *ForumService) ListPosts(category string) ([]models.ForumPost, error) {
	category = strings.TrimSpace(category)
	if category == "" || category == "all" {
		return service.posts.List()
	}
	return service.posts.ListByCategory(category)
}

func (service *ForumService) GetPost(postID string) (models.ForumPost, error) {
	post, err := service.posts.FindByID(postID)
	if err != nil {
		return models.ForumPost{}, notFoundOr(err)
	}
	return post, nil
}

func (service *ForumService) CreatePost(userID string, category string, title string, content string) (models.ForumPost, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(category) == "" {
		return models.ForumPost{}, ErrInvalidInput
	}

	post := models.ForumPost{
		ID:        service.newID(),
		UserID:    userID,
		Category:  strings.TrimSpace(category),
		Title:     title,
		Content:   content,
		LikedBy:   []string{},
		Replies:   []models.ForumReply{},
		CreatedAt: service.clock.Now(),
	}
	if err := service.posts.Create(&post); err != nil {
		return models.ForumPost{}, err
	}
	return post, nil
}

func (service *ForumService) AddReply(userID string, postID string, content string) (models.ForumReply, error) {
	if strings.TrimSpace(content) == "" {
		return models.ForumReply{}, ErrInvalidInput
	}

	post, err := service.posts.FindByID(postID)
	if err != nil {
		return models.ForumReply{}, notFoundOr(err)
	}

	reply := models.ForumReply{
		ID:        service.newID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: service.clock.Now(),
	}
	post.Replies = append(post.Replies, reply)
	if err := service.posts.Save(&post); err != nil {
		return models.ForumReply{}, err
	}
	return reply, nil
}

// ToggleLike flips the user's like on a post and returns the new like count.
func (service *ForumService) ToggleLike(userID string, postID string) (int, error) {
	post, err := service.posts.FindByID(postID)
	if err != nil {
		return 0, notFoundOr(err)
	}

	liked := -1
	for index, likerID := range post.LikedBy {
		if likerID == userID {
			liked = index
			break
		}
	}

	if liked >= 0 {
		post.LikedBy = append(post.LikedBy[:liked], post.LikedBy[liked+1:]...)
		post.Likes--
	} else {
		post.LikedBy = append(post.LikedBy, userID)
		post.Likes++
	}
	if post.Likes < 0 {
		post.Likes = 0
	}

	if err := service.posts.Save(&post); err != nil {
		return 0, err
	}
	return post.Likes, nil
}
