package api

import (
	"html/template"
	"time"

	"github.com/terraincognita07/myfit/internal/db"
	"github.com/terraincognita07/myfit/internal/i18n"
	"github.com/terraincognita07/myfit/internal/metrics"
	"github.com/terraincognita07/myfit/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	metrics      *metrics.Manager
	timers       *services.TimerRegistry
	templates    map[string]*template.Template
	partials     map[string]*template.Template
	loginLimiter *attemptLimiter
	now          func() time.Time

	repositories   *db.Repositories
	authService    *services.AuthService
	recordService  *services.RecordService
	goalService    *services.GoalService
	sessionService *services.SessionService
}

// Session is the signed-in identity resolved once per request by AuthRequired
// from the session token alone.
type Session struct {
	UserID             uint   `json:"user_id"`
	DisplayName        string `json:"display_name"`
	Email              string `json:"email"`
	MustChangePassword bool   `json:"must_change_password,omitempty"`
}

type FlashPayload struct {
	AuthError     string `json:"auth_error,omitempty"`
	Error         string `json:"error,omitempty"`
	Success       string `json:"success,omitempty"`
	LoginEmail    string `json:"login_email,omitempty"`
	RegisterEmail string `json:"register_email,omitempty"`
	RegisterName  string `json:"register_name,omitempty"`
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type credentialsInput struct {
	DisplayName     string `json:"display_name" form:"display_name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	RememberMe      bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type goalInput struct {
	Type          string `json:"type" form:"type"`
	TargetMinutes int    `json:"target_minutes" form:"target_minutes"`
}

type recordInput struct {
	Name            string `json:"name" form:"name"`
	DurationMinutes int    `json:"duration_minutes" form:"duration_minutes"`
	Calories        int    `json:"calories" form:"calories"`
	Date            string `json:"date" form:"date"`
}

type exerciseInput struct {
	Exercise string `json:"exercise" form:"exercise"`
}
