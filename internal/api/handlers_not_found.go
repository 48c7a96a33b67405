package api

import (
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if isAPIPath(c.Path()) || acceptsJSON(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	if isHTMX(c) {
		message := translateMessage(currentMessages(c), "not_found.title")
		if message == "not_found.title" {
			message = "Page not found"
		}
		c.Status(fiber.StatusNotFound)
		return c.SendString(fmt.Sprintf("<div class=\"status-error\">%s</div>", template.HTMLEscapeString(message)))
	}

	data := fiber.Map{
		"Title":           localizedPageTitle(currentMessages(c), "meta.title.not_found", "myfit | Page Not Found"),
		"PrimaryPath":     "/login",
		"PrimaryLabelKey": "not_found.action_login",
	}
	if session, ok := handler.optionalSession(c); ok {
		data["CurrentSession"] = session
		data["PrimaryPath"] = "/dashboard"
		data["PrimaryLabelKey"] = "not_found.action_dashboard"
	}

	c.Status(fiber.StatusNotFound)
	return handler.render(c, "not_found", data)
}
