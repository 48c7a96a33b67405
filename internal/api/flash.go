package api

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) setFlashCookie(c *fiber.Ctx, payload FlashPayload) {
	payload = normalizeFlashPayload(payload)
	if payload == (FlashPayload{}) {
		handler.clearFlashCookie(c)
		return
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(serialized)

	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

func (handler *Handler) popFlashCookie(c *fiber.Ctx) FlashPayload {
	raw := strings.TrimSpace(c.Cookies(flashCookieName))
	if raw == "" {
		return FlashPayload{}
	}
	handler.clearFlashCookie(c)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return FlashPayload{}
	}

	payload := FlashPayload{}
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return FlashPayload{}
	}
	return normalizeFlashPayload(payload)
}

func (handler *Handler) clearFlashCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func normalizeFlashPayload(payload FlashPayload) FlashPayload {
	payload.AuthError = strings.TrimSpace(payload.AuthError)
	payload.Error = strings.TrimSpace(payload.Error)
	payload.Success = strings.TrimSpace(payload.Success)
	payload.LoginEmail = normalizeLoginEmail(payload.LoginEmail)
	payload.RegisterEmail = normalizeLoginEmail(payload.RegisterEmail)
	payload.RegisterName = strings.TrimSpace(payload.RegisterName)
	return payload
}

// flashViewData localizes a popped flash for templates.
func flashViewData(messages map[string]string, flash FlashPayload) fiber.Map {
	return fiber.Map{
		"AuthError":      localizeStatusMessage(messages, flash.AuthError),
		"ErrorMessage":   localizeStatusMessage(messages, flash.Error),
		"SuccessMessage": localizeStatusMessage(messages, flash.Success),
		"LoginEmail":     flash.LoginEmail,
		"RegisterEmail":  flash.RegisterEmail,
		"RegisterName":   flash.RegisterName,
	}
}
