package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/myfit/internal/models"
)

const (
	authCookieName     = "myfit_auth"
	languageCookieName = "myfit_lang"
	flashCookieName    = "myfit_flash"
	contextSessionKey  = "current_session"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentSession(c *fiber.Ctx) (Session, bool) {
	session, ok := c.Locals(contextSessionKey).(Session)
	return session, ok
}

// CurrentSession reports the identity attached by AuthRequired.
func (handler *Handler) CurrentSession(c *fiber.Ctx) (Session, bool) {
	return currentSession(c)
}

func sessionFromUser(user *models.User) Session {
	return Session{
		UserID:             user.ID,
		DisplayName:        user.DisplayName,
		Email:              user.Email,
		MustChangePassword: user.MustChangePassword,
	}
}
