package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) HealthStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	stats, err := handler.health.StatsForUser(user.ID)
	if err != nil {
		return serviceError(c, err, "failed to load health stats")
	}
	return c.JSON(stats)
}

type bloodPressureInput struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
	Pulse     int `json:"pulse"`
}

func (handler *Handler) RecordBloodPressure(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	input := bloodPressureInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reading, err := handler.health.RecordBloodPressure(user.ID, input.Systolic, input.Diastolic, input.Pulse)
	if err != nil {
		return serviceError(c, err, "failed to record blood pressure")
	}
	return c.Status(fiber.StatusCreated).JSON(reading)
}

type bloodSugarInput struct {
	Level float64 `json:"level"`
	Type  string  `json:"type"`
}

func (handler *Handler) RecordBloodSugar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	input := bloodSugarInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reading, err := handler.health.RecordBloodSugar(user.ID, input.Level, input.Type)
	if err != nil {
		return serviceError(c, err, "failed to record blood sugar")
	}
	return c.Status(fiber.StatusCreated).JSON(reading)
}

type weightInput struct {
	Kg float64 `json:"kg"`
}

func (handler *Handler) RecordWeight(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "no profile selected")
	}

	input := weightInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	reading, err := handler.health.RecordWeight(user.ID, input.Kg)
	if err != nil {
		return serviceError(c, err, "failed to record weight")
	}
	return c.Status(fiber.StatusCreated).JSON(reading)
}
