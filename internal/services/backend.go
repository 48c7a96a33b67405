package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/myfit/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

type RecordRepository interface {
	ListByUser(userID uint, limit int) ([]models.ExerciseRecord, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.ExerciseRecord, error)
	SumDurationSince(userID uint, fromStart time.Time) (int, error)
	Create(record *models.ExerciseRecord) error
}

type GoalRepository interface {
	FindByUser(userID uint) (models.Goal, bool, error)
	Upsert(userID uint, goalType string, targetMinutes int) (models.Goal, error)
}

// classifyBackendError maps a storage error onto ErrNotFound or
// ErrBackendUnavailable while keeping the original in the chain.
func classifyBackendError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
}
