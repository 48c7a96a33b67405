package api

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/myfit/internal/services"
)

func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string) error {
	handler.metrics.CounterAuthFailures.WithLabelValues(strings.ReplaceAll(message, " ", "_")).Inc()

	if strings.HasPrefix(c.Path(), "/api/auth/") && !acceptsJSON(c) && !isHTMX(c) {
		flash := FlashPayload{AuthError: message}
		switch c.Path() {
		case "/api/auth/register":
			flash.RegisterEmail = normalizeLoginEmail(c.FormValue("email"))
			flash.RegisterName = strings.TrimSpace(c.FormValue("display_name"))
			handler.setFlashCookie(c, flash)
			return c.Redirect("/register", fiber.StatusSeeOther)
		default:
			flash.LoginEmail = normalizeLoginEmail(c.FormValue("email"))
			handler.setFlashCookie(c, flash)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
	}
	return apiError(c, status, message)
}

func registrationErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrAuthDisplayNameInvalid):
		return "display name required"
	case errors.Is(err, services.ErrAuthPasswordMismatch):
		return "password mismatch"
	case errors.Is(err, services.ErrAuthWeakPassword):
		return "weak password"
	case errors.Is(err, services.ErrAuthPasswordTooLong):
		return "password too long"
	case errors.Is(err, services.ErrAuthEmailExists):
		return "email already exists"
	default:
		return "invalid input"
	}
}

func passwordChangeErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrAuthPasswordMismatch):
		return "password mismatch"
	case errors.Is(err, services.ErrAuthInvalidCurrentPass):
		return "invalid current password"
	case errors.Is(err, services.ErrAuthNewPasswordMustDiffer):
		return "new password must differ"
	case errors.Is(err, services.ErrAuthWeakPassword):
		return "weak password"
	case errors.Is(err, services.ErrAuthPasswordTooLong):
		return "password too long"
	default:
		return "invalid input"
	}
}

func normalizeLoginEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}
	return input, nil
}
