package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowMeasure(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	messages := currentMessages(c)
	data := handler.buildMeasureViewData(session, messages)
	for key, value := range flashViewData(messages, handler.popFlashCookie(c)) {
		data[key] = value
	}
	return handler.render(c, "measure", data)
}
