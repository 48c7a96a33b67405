package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/terraincognita07/myfit/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(services.RegistrationInput{
		DisplayName:     credentials.DisplayName,
		Email:           credentials.Email,
		Password:        credentials.Password,
		ConfirmPassword: credentials.ConfirmPassword,
	})
	if err != nil {
		message := registrationErrorMessage(err)
		switch {
		case errors.Is(err, services.ErrAuthEmailExists):
			return handler.respondAuthError(c, fiber.StatusConflict, message)
		case message == "invalid input" && !errors.Is(err, services.ErrAuthCredentialsInvalid):
			log.WithError(err).Error("register user")
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		default:
			return handler.respondAuthError(c, fiber.StatusBadRequest, message)
		}
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	log.WithField("user_id", user.ID).Info("user registered")

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"ok":      true,
			"session": sessionFromUser(&user),
		})
	}
	return redirectOrJSON(c, postLoginRedirectPath(user.MustChangePassword))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	now := handler.currentTime()
	limiterKey := loginLimiterKey(c, credentials.Email)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return handler.respondAuthError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	user, err := handler.authService.Authenticate(credentials.Email, credentials.Password)
	if err != nil {
		if !errors.Is(err, services.ErrAuthCredentialsInvalid) {
			log.WithError(err).Error("authenticate user")
			return apiError(c, fiber.StatusInternalServerError, "failed to create session")
		}
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	if acceptsJSON(c) && user.MustChangePassword {
		return c.JSON(fiber.Map{"ok": true, "redirect": changePasswordPath})
	}
	return redirectOrJSON(c, postLoginRedirectPath(user.MustChangePassword))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	if session, ok := currentSession(c); ok {
		handler.timers.Discard(session.UserID)
	}
	handler.clearAuthCookie(c)
	if isHTMX(c) {
		c.Set("HX-Redirect", "/login")
		return c.SendStatus(fiber.StatusOK)
	}
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
