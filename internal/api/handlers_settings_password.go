package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/terraincognita07/myfit/internal/services"
)

func (handler *Handler) ShowChangePasswordPage(c *fiber.Ctx) error {
	session, handled, err := handler.currentSessionOrRedirectToLogin(c)
	if err != nil || handled {
		return err
	}

	messages := currentMessages(c)
	data := flashViewData(messages, handler.popFlashCookie(c))
	data["Title"] = localizedPageTitle(messages, "meta.title.change_password", "myfit | Change password")
	data["Forced"] = session.MustChangePassword
	return handler.render(c, "change_password", data)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	session, handled, err := currentSessionOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondPageError(c, fiber.StatusBadRequest, "invalid input", changePasswordPath)
	}

	user, err := handler.authService.FindByID(session.UserID)
	if err != nil {
		log.WithField("user_id", session.UserID).WithError(err).Error("load user for password change")
		return handler.respondPageError(c, fiber.StatusInternalServerError, "failed to change password", changePasswordPath)
	}

	err = handler.authService.ChangePassword(user, input.CurrentPassword, input.NewPassword, input.ConfirmPassword)
	if err != nil {
		message := passwordChangeErrorMessage(err)
		if message == "invalid input" && !errors.Is(err, services.ErrAuthCredentialsInvalid) {
			log.WithField("user_id", user.ID).WithError(err).Error("change password")
			return handler.respondPageError(c, fiber.StatusInternalServerError, "failed to change password", changePasswordPath)
		}
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrAuthInvalidCurrentPass) {
			status = fiber.StatusUnauthorized
		}
		return handler.respondPageError(c, status, message, changePasswordPath)
	}

	user.MustChangePassword = false
	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	log.WithField("user_id", user.ID).Info("password changed")
	return handler.respondPageSuccess(c, "password changed", "/dashboard", fiber.Map{"ok": true})
}
