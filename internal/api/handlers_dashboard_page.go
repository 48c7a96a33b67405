package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	language, messages, now := handler.currentPageViewContext(c)
	data := handler.buildDashboardViewData(session, language, messages, now)
	for key, value := range flashViewData(messages, handler.popFlashCookie(c)) {
		data[key] = value
	}
	return handler.render(c, "dashboard", data)
}
