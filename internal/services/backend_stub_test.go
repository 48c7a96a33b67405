package services

import (
	"errors"
	"sort"
	"time"

	"github.com/terraincognita07/myfit/internal/models"
)

var errStubBackend = errors.New("stub backend down")

type stubRecordRepository struct {
	records   []models.ExerciseRecord
	listErr   error
	createErr error
	sumErr    error
	nextID    uint
}

func (repo *stubRecordRepository) ListByUser(userID uint, limit int) ([]models.ExerciseRecord, error) {
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	result := make([]models.ExerciseRecord, 0)
	for _, record := range repo.records {
		if record.UserID == userID {
			result = append(result, record)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return result[i].ID > result[j].ID
		}
		return result[i].Date.After(result[j].Date)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (repo *stubRecordRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.ExerciseRecord, error) {
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	result := make([]models.ExerciseRecord, 0)
	for _, record := range repo.records {
		if record.UserID == userID && !record.Date.Before(fromStart) && record.Date.Before(toEnd) {
			result = append(result, record)
		}
	}
	return result, nil
}

func (repo *stubRecordRepository) SumDurationSince(userID uint, fromStart time.Time) (int, error) {
	if repo.sumErr != nil {
		return 0, repo.sumErr
	}
	total := 0
	for _, record := range repo.records {
		if record.UserID == userID && !record.Date.Before(fromStart) {
			total += record.DurationMinutes
		}
	}
	return total, nil
}

func (repo *stubRecordRepository) Create(record *models.ExerciseRecord) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.nextID++
	record.ID = repo.nextID
	repo.records = append(repo.records, *record)
	return nil
}

type stubGoalRepository struct {
	goals     map[uint]models.Goal
	findErr   error
	upsertErr error
}

func (repo *stubGoalRepository) FindByUser(userID uint) (models.Goal, bool, error) {
	if repo.findErr != nil {
		return models.Goal{}, false, repo.findErr
	}
	goal, ok := repo.goals[userID]
	return goal, ok, nil
}

func (repo *stubGoalRepository) Upsert(userID uint, goalType string, targetMinutes int) (models.Goal, error) {
	if repo.upsertErr != nil {
		return models.Goal{}, repo.upsertErr
	}
	if repo.goals == nil {
		repo.goals = make(map[uint]models.Goal)
	}
	goal, ok := repo.goals[userID]
	if !ok {
		goal = models.Goal{ID: uint(len(repo.goals) + 1), UserID: userID}
	}
	goal.Type = goalType
	goal.TargetMinutes = targetMinutes
	repo.goals[userID] = goal
	return goal, nil
}

func storageDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
