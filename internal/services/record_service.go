package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/myfit/internal/models"
)

const RecentRecordsLimit = 5

var (
	ErrRecordsLoadFailed = errors.New("load records failed")
	ErrRecordSaveFailed  = errors.New("save record failed")
	ErrRecordInvalid     = errors.New("invalid record")
)

type RecordInput struct {
	Name            string
	DurationMinutes int
	Calories        int
	Date            time.Time
}

type RecordService struct {
	records RecordRepository
}

func NewRecordService(records RecordRepository) *RecordService {
	return &RecordService{records: records}
}

// ListRecordsForUser returns records newest first; limit <= 0 means all.
func (service *RecordService) ListRecordsForUser(userID uint, limit int) ([]models.ExerciseRecord, error) {
	records, err := service.records.ListByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecordsLoadFailed, classifyBackendError(err))
	}
	return records, nil
}

func (service *RecordService) RecentRecords(userID uint) ([]models.ExerciseRecord, error) {
	return service.ListRecordsForUser(userID, RecentRecordsLimit)
}

func (service *RecordService) RecordsInRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.ExerciseRecord, error) {
	records, err := service.records.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecordsLoadFailed, classifyBackendError(err))
	}
	return records, nil
}

func (service *RecordService) RecordsOnDay(userID uint, day time.Time, location *time.Location) ([]models.ExerciseRecord, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.RecordsInRange(userID, dayStart, dayEnd)
}

func (service *RecordService) InsertRecord(userID uint, input RecordInput, location *time.Location) (models.ExerciseRecord, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.DurationMinutes < 0 || input.Calories < 0 || input.Date.IsZero() {
		return models.ExerciseRecord{}, ErrRecordInvalid
	}

	record := models.ExerciseRecord{
		UserID:          userID,
		Name:            name,
		DurationMinutes: input.DurationMinutes,
		Calories:        input.Calories,
		Date:            CalendarDate(input.Date, location),
	}
	if err := service.records.Create(&record); err != nil {
		return models.ExerciseRecord{}, fmt.Errorf("%w: %w", ErrRecordSaveFailed, classifyBackendError(err))
	}
	return record, nil
}

// RecordDatePredicate reports whether a calendar date carries at least one record.
func RecordDatePredicate(records []models.ExerciseRecord) func(time.Time) bool {
	dates := make(map[string]bool, len(records))
	for _, record := range records {
		dates[record.Date.Format(DateLayout)] = true
	}
	return func(day time.Time) bool {
		return dates[day.Format(DateLayout)]
	}
}

// FilterRecordsOnDate keeps the records whose calendar date matches day.
func FilterRecordsOnDate(records []models.ExerciseRecord, day time.Time) []models.ExerciseRecord {
	key := day.Format(DateLayout)
	filtered := make([]models.ExerciseRecord, 0)
	for _, record := range records {
		if record.Date.Format(DateLayout) == key {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
