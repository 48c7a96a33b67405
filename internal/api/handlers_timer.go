package api

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/terraincognita07/myfit/internal/services"
)

func (handler *Handler) GetTimer(c *fiber.Ctx) error {
	session, handled, err := currentSessionOrUnauthorized(c)
	if err != nil || handled {
		return err
	}
	return handler.respondTimer(c, handler.timers.ForUser(session.UserID).Snapshot())
}

func (handler *Handler) StartTimer(c *fiber.Ctx) error {
	return handler.withStopwatch(c, func(stopwatch *services.Stopwatch) {
		stopwatch.Start()
	})
}

func (handler *Handler) StopTimer(c *fiber.Ctx) error {
	return handler.withStopwatch(c, func(stopwatch *services.Stopwatch) {
		stopwatch.Stop()
	})
}

func (handler *Handler) ResetTimer(c *fiber.Ctx) error {
	return handler.withStopwatch(c, func(stopwatch *services.Stopwatch) {
		stopwatch.Reset()
	})
}

func (handler *Handler) SelectExercise(c *fiber.Ctx) error {
	input := exerciseInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	return handler.withStopwatch(c, func(stopwatch *services.Stopwatch) {
		stopwatch.SelectExercise(input.Exercise)
	})
}

func (handler *Handler) SaveTimer(c *fiber.Ctx) error {
	session, handled, err := currentSessionOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	stopwatch := handler.timers.ForUser(session.UserID)
	record, err := handler.sessionService.Save(session.UserID, stopwatch, handler.currentTime(), handler.location)
	if err != nil {
		handler.logBackendFailure(session.UserID, "save_session", err)
		return handler.respondPageError(c, fiber.StatusServiceUnavailable, backendErrorMessage(err), "/measure")
	}
	handler.metrics.CounterSessionsSaved.Inc()
	handler.metrics.HistSessionMinutes.Observe(float64(record.DurationMinutes))
	handler.metrics.GaugeRunningTimers.Set(float64(handler.timers.Running()))
	log.WithFields(log.Fields{
		"user_id":  session.UserID,
		"record":   record.ID,
		"minutes":  record.DurationMinutes,
		"calories": record.Calories,
	}).Info("session saved")

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"ok":     true,
			"record": record,
			"timer":  stopwatch.Snapshot(),
		})
	}
	if isHTMX(c) {
		return handler.respondTimer(c, stopwatch.Snapshot())
	}
	return handler.respondPageSuccess(c, "session saved", "/measure", nil)
}

func (handler *Handler) withStopwatch(c *fiber.Ctx, apply func(*services.Stopwatch)) error {
	session, handled, err := currentSessionOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	stopwatch := handler.timers.ForUser(session.UserID)
	apply(stopwatch)
	handler.metrics.GaugeRunningTimers.Set(float64(handler.timers.Running()))
	return handler.respondTimer(c, stopwatch.Snapshot())
}

func (handler *Handler) respondTimer(c *fiber.Ctx, snapshot services.TimerSnapshot) error {
	if isHTMX(c) {
		return handler.renderPartial(c, "timer_panel", fiber.Map{"Timer": snapshot})
	}
	if c.Method() == fiber.MethodPost && !acceptsJSON(c) {
		return c.Redirect("/measure", fiber.StatusSeeOther)
	}
	return c.JSON(snapshot)
}
