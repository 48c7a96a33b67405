package api

import (
	"github.com/terraincognita07/myfit/internal/db"
	"github.com/terraincognita07/myfit/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.recordService = services.NewRecordService(handler.repositories.Records)
	handler.goalService = services.NewGoalService(handler.repositories.Goals, handler.repositories.Records)
	handler.sessionService = services.NewSessionService(handler.recordService)
	return handler
}
