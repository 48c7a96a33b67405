package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if handled, err := handler.redirectAuthenticatedUserIfPresent(c); handled || err != nil {
		return err
	}

	messages := currentMessages(c)
	data := flashViewData(messages, handler.popFlashCookie(c))
	data["Title"] = localizedPageTitle(messages, "meta.title.login", "myfit | Log in")
	return handler.render(c, "login", data)
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if handled, err := handler.redirectAuthenticatedUserIfPresent(c); handled || err != nil {
		return err
	}

	messages := currentMessages(c)
	data := flashViewData(messages, handler.popFlashCookie(c))
	data["Title"] = localizedPageTitle(messages, "meta.title.register", "myfit | Sign up")
	return handler.render(c, "register", data)
}
