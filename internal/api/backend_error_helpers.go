package api

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/terraincognita07/myfit/internal/services"
)

// logBackendFailure records a failed collaborator call with the user and operation.
func (handler *Handler) logBackendFailure(userID uint, operation string, err error) {
	handler.metrics.CounterBackendErrors.WithLabelValues(operation).Inc()
	log.WithFields(log.Fields{
		"user_id":   userID,
		"operation": operation,
	}).WithError(err).Error("backend call failed")
}

func backendErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrRecordsLoadFailed):
		return "failed to load records"
	case errors.Is(err, services.ErrGoalLoadFailed):
		return "failed to load goal"
	case errors.Is(err, services.ErrGoalSaveFailed):
		return "failed to save goal"
	case errors.Is(err, services.ErrRecordSaveFailed):
		return "failed to save record"
	default:
		return "internal error"
	}
}
