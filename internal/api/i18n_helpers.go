package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/myfit/internal/models"
)

var errorKeys = map[string]string{
	"invalid input":             "auth.error.invalid_input",
	"invalid credentials":       "auth.error.invalid_credentials",
	"email already exists":      "auth.error.email_exists",
	"weak password":             "auth.error.weak_password",
	"password mismatch":         "auth.error.password_mismatch",
	"password too long":         "auth.error.password_too_long",
	"display name required":     "auth.error.display_name",
	"too many login attempts":   "auth.error.too_many_login_attempts",
	"invalid current password":  "settings.error.invalid_current_password",
	"new password must differ":  "settings.error.password_unchanged",
	"password change required":  "settings.error.password_change_required",
	"failed to load records":    "error.records_load",
	"failed to load goal":       "error.goal_load",
	"failed to save goal":       "error.goal_save",
	"failed to save record":     "error.record_save",
	"invalid goal target":       "goal.error.invalid_target",
	"invalid goal type":         "goal.error.invalid_type",
	"invalid record":            "records.error.invalid",
	"invalid date":              "error.invalid_date",
	"goal saved":                "goal.success.saved",
	"session saved":             "measure.success.saved",
	"password changed":          "settings.success.password_changed",
	"failed to create session":  "error.generic",
	"failed to create account":  "error.generic",
	"failed to change password": "error.generic",
}

func translateMessage(messages map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return key
}

func errorTranslationKey(message string) string {
	key, ok := errorKeys[strings.ToLower(strings.TrimSpace(message))]
	if !ok {
		return ""
	}
	return key
}

// localizeStatusMessage renders a flash or API message in the request language,
// falling back to the raw message.
func localizeStatusMessage(messages map[string]string, message string) string {
	key := errorTranslationKey(message)
	if key == "" {
		return message
	}
	if localized := translateMessage(messages, key); localized != key {
		return localized
	}
	return message
}

// localizedExerciseName renders a stored record name. Names outside the MET
// table are shown as typed.
func localizedExerciseName(messages map[string]string, name string) string {
	if _, known := models.LookupExerciseType(name); !known {
		return name
	}
	return translateMessage(messages, "exercise."+name)
}

func currentLanguage(c *fiber.Ctx) string {
	language, ok := c.Locals(contextLanguageKey).(string)
	if !ok || strings.TrimSpace(language) == "" {
		return ""
	}
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, ok := c.Locals(contextMessagesKey).(map[string]string)
	if !ok || messages == nil {
		return map[string]string{}
	}
	return messages
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	messages := currentMessages(c)
	if _, ok := data["Messages"]; !ok {
		data["Messages"] = messages
	}

	if _, ok := data["Lang"]; !ok {
		language := currentLanguage(c)
		if language == "" {
			language = handler.i18n.DefaultLanguage()
		}
		data["Lang"] = language
	}

	if _, ok := data["CurrentPath"]; !ok {
		data["CurrentPath"] = currentPathWithQuery(c)
	}

	if _, ok := data["CSRFToken"]; !ok {
		data["CSRFToken"] = csrfToken(c)
	}

	if _, ok := data["CurrentSession"]; !ok {
		if session, found := currentSession(c); found {
			data["CurrentSession"] = session
		}
	}

	return data
}

func currentPathWithQuery(c *fiber.Ctx) string {
	path := string(c.Request().URI().RequestURI())
	if path == "" {
		return c.Path()
	}
	return path
}
