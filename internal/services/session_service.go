package services

import (
	"time"

	"github.com/terraincognita07/myfit/internal/models"
)

type SessionService struct {
	records *RecordService
}

func NewSessionService(records *RecordService) *SessionService {
	return &SessionService{records: records}
}

// Save persists the stopwatch as a record dated today and resets it to idle.
// The stopwatch is left untouched when the insert fails.
func (service *SessionService) Save(userID uint, stopwatch *Stopwatch, now time.Time, location *time.Location) (models.ExerciseRecord, error) {
	snapshot := stopwatch.Snapshot()
	record, err := service.records.InsertRecord(userID, RecordInputFromSnapshot(snapshot, now), location)
	if err != nil {
		return models.ExerciseRecord{}, err
	}
	stopwatch.Reset()
	return record, nil
}

func RecordInputFromSnapshot(snapshot TimerSnapshot, now time.Time) RecordInput {
	return RecordInput{
		Name:            snapshot.Exercise,
		DurationMinutes: WholeMinutes(snapshot.ElapsedMilliseconds),
		Calories:        snapshot.Calories,
		Date:            now,
	}
}
