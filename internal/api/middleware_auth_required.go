package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const changePasswordPath = "/settings/password"

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	session, err := handler.sessionFromRequest(c)
	if err != nil {
		log.WithField("path", c.Path()).WithError(err).Debug("unauthenticated request")
		if isAPIPath(c.Path()) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextSessionKey, session)
	if session.MustChangePassword && !isPasswordChangePath(c.Path()) {
		if isAPIPath(c.Path()) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "password change required"})
		}
		return c.Redirect(changePasswordPath, fiber.StatusSeeOther)
	}

	return c.Next()
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

func isPasswordChangePath(path string) bool {
	cleanPath := strings.TrimSpace(path)
	return cleanPath == changePasswordPath ||
		cleanPath == "/api/settings/change-password" ||
		cleanPath == "/api/auth/logout"
}
