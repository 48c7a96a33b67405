package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/myfit/internal/models"
)

const sessionTokenIssuer = "myfit"

var errMissingSessionCookie = errors.New("missing session cookie")

// sessionClaims carry everything a request needs about the signed-in user, so
// AuthRequired never reads the users table.
type sessionClaims struct {
	DisplayName        string `json:"name"`
	Email              string `json:"email"`
	MustChangePassword bool   `json:"mcp,omitempty"`
	jwt.RegisteredClaims
}

func (claims sessionClaims) session() (Session, error) {
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return Session{}, errors.New("invalid session subject")
	}
	return Session{
		UserID:             uint(userID),
		DisplayName:        claims.DisplayName,
		Email:              claims.Email,
		MustChangePassword: claims.MustChangePassword,
	}, nil
}

func (handler *Handler) signSessionToken(user *models.User, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultAuthTokenTTL
	}
	now := time.Now()

	claims := sessionClaims{
		DisplayName:        user.DisplayName,
		Email:              user.Email,
		MustChangePassword: user.MustChangePassword,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
}

func (handler *Handler) parseSessionToken(raw string) (Session, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return handler.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionTokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Session{}, err
	}
	return claims.session()
}

// sessionFromRequest resolves the auth cookie into a Session.
func (handler *Handler) sessionFromRequest(c *fiber.Ctx) (Session, error) {
	raw := strings.TrimSpace(c.Cookies(authCookieName))
	if raw == "" {
		return Session{}, errMissingSessionCookie
	}
	return handler.parseSessionToken(raw)
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, user *models.User, rememberMe bool) error {
	tokenTTL := defaultAuthTokenTTL
	if rememberMe {
		tokenTTL = rememberAuthTokenTTL
	}

	token, err := handler.signSessionToken(user, tokenTTL)
	if err != nil {
		return err
	}

	cookie := &fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	}
	if rememberMe {
		cookie.Expires = time.Now().Add(tokenTTL)
	}
	c.Cookie(cookie)
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
