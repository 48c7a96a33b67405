package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/myfit/internal/models"
)

const (
	maxGoalTargetMinutes = 7 * 24 * 60
	maxGoalTypeLength    = 64
)

var (
	ErrGoalLoadFailed    = errors.New("load goal failed")
	ErrGoalSaveFailed    = errors.New("save goal failed")
	ErrGoalTargetInvalid = errors.New("invalid goal target")
	ErrGoalTypeInvalid   = errors.New("invalid goal type")
)

type GoalProgress struct {
	HasGoal        bool
	Goal           models.Goal
	CurrentMinutes int
	TargetMinutes  int
	Percent        int
}

type GoalService struct {
	goals   GoalRepository
	records RecordRepository
}

func NewGoalService(goals GoalRepository, records RecordRepository) *GoalService {
	return &GoalService{goals: goals, records: records}
}

// GetGoalForUser reports found=false when no goal has been set; that is not an error.
func (service *GoalService) GetGoalForUser(userID uint) (models.Goal, bool, error) {
	goal, found, err := service.goals.FindByUser(userID)
	if err != nil {
		return models.Goal{}, false, fmt.Errorf("%w: %w", ErrGoalLoadFailed, classifyBackendError(err))
	}
	return goal, found, nil
}

func (service *GoalService) SumDurationSinceWeekStart(userID uint, weekStart time.Time) (int, error) {
	total, err := service.records.SumDurationSince(userID, weekStart)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrGoalLoadFailed, classifyBackendError(err))
	}
	return total, nil
}

func (service *GoalService) Progress(userID uint, now time.Time, location *time.Location) (GoalProgress, error) {
	goal, found, err := service.GetGoalForUser(userID)
	if err != nil {
		return GoalProgress{}, err
	}
	if !found {
		return GoalProgress{}, nil
	}

	current, err := service.SumDurationSinceWeekStart(userID, WeekStart(now, location))
	if err != nil {
		return GoalProgress{}, err
	}
	return GoalProgress{
		HasGoal:        true,
		Goal:           goal,
		CurrentMinutes: current,
		TargetMinutes:  goal.TargetMinutes,
		Percent:        ProgressPercent(current, goal.TargetMinutes),
	}, nil
}

func (service *GoalService) UpsertGoal(userID uint, goalType string, targetMinutes int) (models.Goal, error) {
	goalType = strings.TrimSpace(goalType)
	if goalType == "" {
		goalType = models.GoalTypeWeeklyMinutes
	}
	if utf8.RuneCountInString(goalType) > maxGoalTypeLength {
		return models.Goal{}, ErrGoalTypeInvalid
	}
	if targetMinutes <= 0 || targetMinutes > maxGoalTargetMinutes {
		return models.Goal{}, ErrGoalTargetInvalid
	}

	goal, err := service.goals.Upsert(userID, goalType, targetMinutes)
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrGoalSaveFailed, classifyBackendError(err))
	}
	return goal, nil
}

// ProgressPercent is capped to 0..100 for the progress bar.
func ProgressPercent(current int, target int) int {
	if target <= 0 || current <= 0 {
		return 0
	}
	percent := current * 100 / target
	if percent > 100 {
		return 100
	}
	return percent
}
