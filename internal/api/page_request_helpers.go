package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func postLoginRedirectPath(mustChangePassword bool) string {
	if mustChangePassword {
		return changePasswordPath
	}
	return "/dashboard"
}

func (handler *Handler) redirectAuthenticatedUserIfPresent(c *fiber.Ctx) (bool, error) {
	session, err := handler.sessionFromRequest(c)
	if err != nil {
		return false, nil
	}
	if redirectErr := c.Redirect(postLoginRedirectPath(session.MustChangePassword), fiber.StatusSeeOther); redirectErr != nil {
		return false, redirectErr
	}
	return true, nil
}

func (handler *Handler) currentSessionOrRedirectToLogin(c *fiber.Ctx) (Session, bool, error) {
	session, ok := currentSession(c)
	if !ok {
		if redirectErr := c.Redirect("/login", fiber.StatusSeeOther); redirectErr != nil {
			return Session{}, false, redirectErr
		}
		return Session{}, true, nil
	}
	return session, false, nil
}

func currentSessionOrUnauthorized(c *fiber.Ctx) (Session, bool, error) {
	session, ok := currentSession(c)
	if !ok {
		if sendErr := c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"}); sendErr != nil {
			return Session{}, false, sendErr
		}
		return Session{}, true, nil
	}
	return session, false, nil
}

func (handler *Handler) currentPageViewContext(c *fiber.Ctx) (string, map[string]string, time.Time) {
	return currentLanguage(c), currentMessages(c), handler.currentTime()
}

// optionalSession reads the auth cookie on routes without AuthRequired.
func (handler *Handler) optionalSession(c *fiber.Ctx) (Session, bool) {
	session, err := handler.sessionFromRequest(c)
	if err != nil {
		return Session{}, false
	}
	return session, true
}
