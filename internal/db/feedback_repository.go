package db

import (
	"github.com/silverkaki/silverkaki/internal/models"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	database *gorm.DB
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{database: database}
}

func (repo *FeedbackRepository) ListByUser(userID string) ([]models.Feedback, error) {
	entries := make([]models.Feedback, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("submitted_at DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *FeedbackRepository) Create(entry *models.Feedback) error {
	return repo.database.Create(entry).Error
}
