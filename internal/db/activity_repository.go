package db

import (
	"time"

	"github.com/silverkaki/silverkaki/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) CountActivities() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Activity{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ActivityRepository) List() ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.Order("starts_at ASC, id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) ListByRange(fromStart time.Time, toEnd time.Time) ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.
		Where("starts_at >= ? AND starts_at < ?", fromStart, toEnd).
		Order("starts_at ASC, id ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) FindByID(activityID string) (models.Activity, error) {
	var activity models.Activity
	if err := repo.database.First(&activity, "id = ?", activityID).Error; err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (repo *ActivityRepository) CreateBatch(activities []models.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	return repo.database.CreateInBatches(activities, 100).Error
}
