package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CalendarDayPanel(c *fiber.Ctx) error {
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

	return handler.renderPartial(c, "calendar_day_panel", handler.buildDayPanelData(currentLanguage(c), day, records))
}
