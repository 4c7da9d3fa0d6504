package handlers

import (
	"errors"
	"time"

	"snackstock-api/domain"
	"snackstock-api/internal/api/presenters"
	"snackstock-api/pkg/statistics"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StatisticsHandler interface {
		GetStatistics(c *fiber.Ctx) error
		RecordConsumption(c *fiber.Ctx) error
	}

	statisticsHandler struct {
		statisticsService statistics.StatisticsService
		validator         *validator.Validate
	}
)

func NewStatisticsHandler(statisticsService statistics.StatisticsService, validator *validator.Validate) StatisticsHandler {
	return &statisticsHandler{
		statisticsService: statisticsService,
		validator:         validator,
	}
}

func (h *statisticsHandler) GetStatistics(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.statisticsService.GetStatistics(c.Context(), userID, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetStatistics, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStatistics, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStatistics)
}

func (h *statisticsHandler) RecordConsumption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecordConsumptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordConsumption, err)
	}

	if err := h.statisticsService.RecordConsumption(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordConsumption, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessRecordConsumption)
}
