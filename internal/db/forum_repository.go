package db

import (
	"github.com/silverkaki/silverkaki/internal/models"
	"gorm.io/gorm"
)

type ForumRepository struct {
	database *gorm.DB
}

func NewForumRepository(database *gorm.DB) *ForumRepository {
	return &ForumRepository{database: database}
}

func (repo *ForumRepository) CountPosts() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ForumPost{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ForumRepository) List() ([]models.ForumPost, error) {
	posts := make([]models.ForumPost, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *ForumRepository) ListByCategory(category string) ([]models.ForumPost, error) {
	posts := make([]models.ForumPost, 0)
	if err := repo.database.
		Where("category = ?", category).
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *ForumRepository) FindByID(postID string) (models.ForumPost, error) {
	var post models.ForumPost
	if err := repo.database.First(&post, "id = ?", postID).Error; err != nil {
		return models.ForumPost{}, err
	}
	return post, nil
}

func (repo *ForumRepository) Create(post *models.ForumPost) error {
	return repo.database.Create(post).Error
}

func (repo *ForumRepository) Save(post *models.ForumPost) error {
	return repo.database.Save(post).Error
}
