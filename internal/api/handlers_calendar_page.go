package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowCalendar(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	language, messages, now := handler.currentPageViewContext(c)
	activeMonth, selectedDate, err := resolveCalendarMonthAndSelectedDate(c.Query("month"), c.Query("day"), now, handler.location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid month")
	}

	data := handler.buildCalendarViewData(session, language, messages, now, activeMonth, selectedDate)
	return handler.render(c, "calendar", data)
}
