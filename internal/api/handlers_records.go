package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/myfit/internal/models"
	"github.com/terraincognita07/myfit/internal/services"
)

func (handler *Handler) GetRecords(c *fiber.Ctx) error {
	session, handled, err := currentSessionOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	var records []models.ExerciseRecord
	if month := strings.TrimSpace(c.Query("month")); month != "" {
		monthStart, parseErr := parseMonthQuery(month, handler.currentTime(), handler.location)
		if parseErr != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		rangeStart, rangeEnd := services.MonthGridRange(monthStart)
		records, err = handler.recordService.RecordsInRange(session.UserID, rangeStart, rangeEnd)
	} else {
		records, err = handler.recordService.ListRecordsForUser(session.UserID, c.QueryInt("limit", 0))
	}
	if err != nil {
		handler.logBackendFailure(session.UserID, "list_records", err)
		return apiError(c, fiber.StatusServiceUnavailable, backendErrorMessage(err))
	}
	return c.JSON(records)
}

func (handler *Handler) GetDayRecords(c *fiber.Ctx) error {
	session, handled, err := currentSessionOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	records, err := handler.recordService.RecordsOnDay(session.UserID, day, handler.location)
	if err != nil {
		handler.logBackendFailure(session.UserID, "list_day_records", err)
		return apiError(c, fiber.StatusServiceUnavailable, backendErrorMessage(err))
	}
	return c.JSON(records)
}

func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	session, handled, err := currentSessionOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	input := recordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid record")
	}

	date := handler.currentTime()
	if strings.TrimSpace(input.Date) != "" {
		date, err = parseDayParam(input.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
	}

	record, err := handler.recordService.InsertRecord(session.UserID, services.RecordInput{
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Calories:        input.Calories,
		Date:            date,
	}, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrRecordInvalid) {
			return apiError(c, fiber.StatusBadRequest, "invalid record")
		}
		handler.logBackendFailure(session.UserID, "insert_record", err)
		return apiError(c, fiber.StatusServiceUnavailable, backendErrorMessage(err))
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}
