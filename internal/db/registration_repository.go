package db

import (
	"github.com/silverkaki/silverkaki/internal/models"
	"gorm.io/gorm"
)

type RegistrationRepository struct {
	database *gorm.DB
}

func NewRegistrationRepository(database *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{database: database}
}

func (repo *RegistrationRepository) ListByUser(userID string) ([]models.Registration, error) {
	registrations := make([]models.Registration, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("registered_at ASC, id ASC").
		Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func (repo *RegistrationRepository) FindByUserAndActivity(userID string, activityID string) (models.Registration, bool, error) {
	var registration models.Registration
	result := repo.database.
		Where("user_id = ? AND activity_id = ?", userID, activityID).
		Limit(1).
		Find(&registration)
	if result.Error != nil {
		return models.Registration{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Registration{}, false, nil
	}
	return registration, true, nil
}

func (repo *RegistrationRepository) Create(registration *models.Registration) error {
	return repo.database.Create(registration).Error
}

func (repo *RegistrationRepository) Save(registration *models.Registration) error {
	return repo.database.Save(registration).Error
}

func (repo *RegistrationRepository) DeleteByUserAndActivity(userID string, activityID string) error {
	return repo.database.
		Where("user_id = ? AND activity_id = ?", userID, activityID).
		Delete(&models.Registration{}).Error
}
