package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/register", handler.ShowRegisterPage)
	app.Get("/", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/measure", handler.AuthRequired, handler.ShowMeasure)
	app.Get("/calendar", handler.AuthRequired, handler.ShowCalendar)
	app.Get("/calendar/day/:date", handler.AuthRequired, handler.CalendarDayPanel)
	app.Get(changePasswordPath, handler.AuthRequired, handler.ShowChangePasswordPage)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	records := api.Group("/records", handler.AuthRequired)
	records.Get("", handler.GetRecords)
	records.Post("", handler.CreateRecord)
	records.Get("/day/:date", handler.GetDayRecords)

	goal := api.Group("/goal", handler.AuthRequired)
	goal.Get("", handler.GetGoal)
	goal.Post("", handler.UpsertGoal)

	timer := api.Group("/timer", handler.AuthRequired)
	timer.Get("", handler.GetTimer)
	timer.Post("/start", handler.StartTimer)
	timer.Post("/stop", handler.StopTimer)
	timer.Post("/reset", handler.ResetTimer)
	timer.Post("/exercise", handler.SelectExercise)
	timer.Post("/save", handler.SaveTimer)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-password", handler.ChangePassword)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
