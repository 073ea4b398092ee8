package services

import (
	"fmt"

	"github.com/silverkaki/silverkaki/internal/models"
)

// Alert thresholds for self-reported readings.
const (
	SystolicAlertThreshold  = 140
	DiastolicAlertThreshold = 90
	FastingSugarThreshold   = 7.0
	AfterMealSugarThreshold = 11.0
)

// HealthNotifier emits synchronous health alerts; the 24h interest-match
// dedup does not apply to these.
type HealthNotifier interface {
	Emit(userID string, notificationType string, title string, message string, icon string) (models.Notification, error)
}

type HealthService struct {
	users    PointsUserRepository
	notifier HealthNotifier
	clock    Clock
}

func NewHealthService(users PointsUserRepository, notifier HealthNotifier, clock Clock) *HealthService {
	if clock == nil {
		clock = SystemClock()
	}
	return &HealthService{users: users, notifier: notifier, clock: clock}
}

func (service *HealthService) RecordBloodPressure(userID string, systolic int, diastolic int, pulse int) (models.BloodPressureReading, error) {
	if systolic <= 0 || diastolic <= 0 {
		return models.BloodPressureReading{}, ErrInvalidInput
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.BloodPressureReading{}, notFoundOr(err)
	}

	reading := models.BloodPressureReading{
		Date:      service.clock.Now(),
		Systolic:  systolic,
		Diastolic: diastolic,
		Pulse:     pulse,
	}
	user.BloodPressure = prependBloodPressure(user.BloodPressure, reading)
	if err := service.users.Save(&user); err != nil {
		return models.BloodPressureReading{}, err
	}

	if systolic >= SystolicAlertThreshold || diastolic >= DiastolicAlertThreshold {
		message := fmt.Sprintf("Your BP %d/%d is elevated. Consider consulting your doctor.", systolic, diastolic)
		if _, err := service.notifier.Emit(userID, models.NotificationHealthAlert, "⚠️ Blood Pressure Alert", message, "🩺"); err != nil {
			return models.BloodPressureReading{}, err
		}
	}

	return reading, nil
}

func (service *HealthService) RecordBloodSugar(userID string, level float64, readingType string) (models.BloodSugarReading, error) {
	if level <= 0 {
		return models.BloodSugarReading{}, ErrInvalidInput
	}
	if readingType != models.SugarReadingFasting && readingType != models.SugarReadingAfterMeal {
		return models.BloodSugarReading{}, ErrInvalidInput
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.BloodSugarReading{}, notFoundOr(err)
	}

	reading := models.BloodSugarReading{
		Date:  service.clock.Now(),
		Level: level,
		Type:  readingType,
	}
	user.BloodSugar = prependBloodSugar(user.BloodSugar, reading)
	if err := service.users.Save(&user); err != nil {
		return models.BloodSugarReading{}, err
	}

	threshold := FastingSugarThreshold
	label := "fasting"
	if readingType == models.SugarReadingAfterMeal {
		threshold = AfterMealSugarThreshold
		label = "after-meal"
	}
	if level >= threshold {
		message := fmt.Sprintf("Your %s sugar %.1f mmol/L is elevated.", label, level)
		if _, err := service.notifier.Emit(userID, models.NotificationHealthAlert, "⚠️ Blood Sugar Alert", message, "🩸"); err != nil {
			return models.BloodSugarReading{}, err
		}
	}

	return reading, nil
}

func (service *HealthService) RecordWeight(userID string, kg float64) (models.WeightReading, error) {
	if kg <= 0 {
		return models.WeightReading{}, ErrInvalidInput
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.WeightReading{}, notFoundOr(err)
	}

	reading := models.WeightReading{Date: service.clock.Now(), Kg: kg}
	user.Weight = prependWeight(user.Weight, reading)
	if err := service.users.Save(&user); err != nil {
		return models.WeightReading{}, err
	}

	return reading, nil
}

type HealthStats struct {
	BloodPressure []models.BloodPressureReading `json:"blood_pressure"`
	BloodSugar    []models.BloodSugarReading    `json:"blood_sugar"`
	Weight        []models.WeightReading        `json:"weight"`
}

func (service *HealthService) StatsForUser(userID string) (HealthStats, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return HealthStats{}, notFoundOr(err)
	}
	return HealthStats{
		BloodPressure: user.BloodPressure,
		BloodSugar:    user.BloodSugar,
		Weight:        user.Weight,
	}, nil
}

func prependBloodPressure(readings []models.BloodPressureReading, reading models.BloodPressureReading) []models.BloodPressureReading {
	readings = append([]models.BloodPressureReading{reading}, readings...)
	if len(readings) > models.MaxHealthReadings {
		readings = readings[:models.MaxHealthReadings]
	}
	return readings
}

func prependBloodSugar(readings []models.BloodSugarReading, reading models.BloodSugarReading) []models.BloodSugarReading {
	readings = append([]models.BloodSugarReading{reading}, readings...)
	if len(readings) > models.MaxHealthReadings {
		readings = readings[:models.MaxHealthReadings]
	}
	return readings
}

func prependWeight(readings []models.WeightReading, reading models.WeightReading) []models.WeightReading {
	readings = append([]models.WeightReading{reading}, readings...)
	if len(readings) > models.MaxHealthReadings {
		readings = readings[:models.MaxHealthReadings]
	}
	return readings
}
