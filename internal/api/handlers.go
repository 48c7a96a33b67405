package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/myfit/internal/i18n"
	"github.com/terraincognita07/myfit/internal/metrics"
	"github.com/terraincognita07/myfit/internal/services"
	"gorm.io/gorm"
)

var pageTemplates = []string{"login", "register", "dashboard", "measure", "calendar", "change_password", "not_found"}

var partialTemplates = []string{"calendar_day_panel.html", "timer_panel.html"}

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool, metricsManager *metrics.Manager, timers *services.TimerRegistry) (*Handler, error) {
	if location == nil {
		location = time.Local
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if metricsManager == nil {
		metricsManager = metrics.NewTestManager()
	}
	if timers == nil {
		timers = services.NewTimerRegistry(nil)
	}

	funcMap := newTemplateFuncMap()
	templates, err := parsePageTemplates(templateDir, funcMap, pageTemplates, partialTemplates)
	if err != nil {
		return nil, err
	}
	partials, err := parsePartialTemplates(templateDir, funcMap, partialTemplates)
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		metrics:      metricsManager,
		timers:       timers,
		templates:    templates,
		partials:     partials,
		loginLimiter: newAttemptLimiter(),
		now:          time.Now,
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) currentTime() time.Time {
	return handler.now().In(handler.location)
}
