package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/terraincognita07/myfit/internal/db"
	"github.com/terraincognita07/myfit/internal/i18n"
	"github.com/terraincognita07/myfit/internal/metrics"
	"github.com/terraincognita07/myfit/internal/models"
	"github.com/terraincognita07/myfit/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// testNow is a Wednesday; the week started on Sunday 2026-10-11.
var testNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

type testApp struct {
	app      *fiber.App
	database *gorm.DB
	handler  *Handler
	registry *prometheus.Registry
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	internalDir := filepath.Dir(apiDir)
	templatesDir := filepath.Join(internalDir, "templates")
	localesDir := filepath.Join(internalDir, "i18n", "locales")
	databasePath := filepath.Join(t.TempDir(), "myfit-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewManager("en", localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	metricsManager, registry := metrics.NewTestManagerAndRegistry()
	timers := services.NewTimerRegistry(silentTickSource)
	t.Cleanup(timers.Close)

	handler, err := NewHandler(database, "test-secret-key", templatesDir, time.UTC, i18nManager, false, metricsManager, timers)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return &testApp{app: app, database: database, handler: handler, registry: registry}
}

// silentTickSource never fires, so elapsed time only moves through Stopwatch.Tick.
func silentTickSource(time.Duration) (<-chan time.Time, func()) {
	return make(chan time.Time), func() {}
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string, displayName string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		DisplayName:  displayName,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestRecord(t *testing.T, database *gorm.DB, userID uint, name string, minutes int, calories int, day string) models.ExerciseRecord {
	t.Helper()

	date, err := time.ParseInLocation(services.DateLayout, day, time.UTC)
	if err != nil {
		t.Fatalf("parse record day %q: %v", day, err)
	}
	record := models.ExerciseRecord{
		UserID:          userID,
		Name:            name,
		DurationMinutes: minutes,
		Calories:        calories,
		Date:            date,
	}
	if err := database.Create(&record).Error; err != nil {
		t.Fatalf("create record: %v", err)
	}
	return record
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	form := url.Values{
		"email":    {email},
		"password": {password},
	}
	response := sendForm(t, app, http.MethodPost, "/api/auth/login", form, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login status 303, got %d", response.StatusCode)
	}

	if cookie := responseCookie(response, authCookieName); cookie != nil && cookie.Value != "" {
		return cookie.Name + "=" + cookie.Value
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}

// signedInTestApp returns an app with one user and that user's auth cookie.
func signedInTestApp(t *testing.T) (*testApp, models.User, string) {
	t.Helper()

	env := newTestApp(t)
	user := createTestUser(t, env.database, "runner@example.com", "StrongPass1", "Aki")
	authCookie := loginAndExtractAuthCookie(t, env.app, "runner@example.com", "StrongPass1")
	return env, user, authCookie
}

func sendForm(t *testing.T, app *fiber.App, method string, path string, form url.Values, cookie string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func sendJSON(t *testing.T, app *fiber.App, method string, path string, body string, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Accept", "application/json")
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode json response: %v", err)
	}
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}

func responseCookie(response *http.Response, name string) *http.Cookie {
	for _, cookie := range response.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func pageGET(t *testing.T, app *fiber.App, authCookie string, path string, expectedStatus int) string {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	if response.StatusCode != expectedStatus {
		t.Fatalf("GET %s expected status %d, got %d", path, expectedStatus, response.StatusCode)
	}
	return readBody(t, response)
}
