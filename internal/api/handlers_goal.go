package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/terraincognita07/myfit/internal/services"
)

func (handler *Handler) GetGoal(c *fiber.Ctx) error {
	session, handled, err := currentSessionOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	progress, err := handler.goalService.Progress(session.UserID, handler.currentTime(), handler.location)
	if err != nil {
		handler.logBackendFailure(session.UserID, "goal_progress", err)
		return apiError(c, fiber.StatusServiceUnavailable, backendErrorMessage(err))
	}
	if !progress.HasGoal {
		return c.JSON(fiber.Map{"goal": nil})
	}
	return c.JSON(fiber.Map{
		"goal":            progress.Goal,
		"current_minutes": progress.CurrentMinutes,
		"target_minutes":  progress.TargetMinutes,
		"percent":         progress.Percent,
	})
}

func (handler *Handler) UpsertGoal(c *fiber.Ctx) error {
	session, handled, err := currentSessionOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	input := goalInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondPageError(c, fiber.StatusBadRequest, "invalid goal target", "/dashboard")
	}

	goal, err := handler.goalService.UpsertGoal(session.UserID, input.Type, input.TargetMinutes)
	if err != nil {
		if errors.Is(err, services.ErrGoalTargetInvalid) {
			return handler.respondPageError(c, fiber.StatusBadRequest, "invalid goal target", "/dashboard")
		}
		if errors.Is(err, services.ErrGoalTypeInvalid) {
			return handler.respondPageError(c, fiber.StatusBadRequest, "invalid goal type", "/dashboard")
		}
		handler.logBackendFailure(session.UserID, "upsert_goal", err)
		return handler.respondPageError(c, fiber.StatusServiceUnavailable, backendErrorMessage(err), "/dashboard")
	}

	handler.metrics.CounterGoalUpdates.Inc()
	log.WithFields(log.Fields{"user_id": session.UserID, "goal_type": goal.Type, "target_minutes": goal.TargetMinutes}).Info("goal saved")
	return handler.respondPageSuccess(c, "goal saved", "/dashboard", fiber.Map{"ok": true, "goal": goal})
}
