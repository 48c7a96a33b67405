package db

import (
	"time"

	"github.com/terraincognita07/myfit/internal/models"
	"gorm.io/gorm"
)

type ExerciseRecordRepository struct {
	database *gorm.DB
}

func NewExerciseRecordRepository(database *gorm.DB) *ExerciseRecordRepository {
	return &ExerciseRecordRepository{database: database}
}

// ListByUser returns the newest records first. A non-positive limit returns all rows.
func (repo *ExerciseRecordRepository) ListByUser(userID uint, limit int) ([]models.ExerciseRecord, error) {
	query := repo.database.Where("user_id = ?", userID).Order("date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	records := make([]models.ExerciseRecord, 0)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *ExerciseRecordRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.ExerciseRecord, error) {
	records := make([]models.ExerciseRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *ExerciseRecordRepository) SumDurationSince(userID uint, fromStart time.Time) (int, error) {
	var total int64
	if err := repo.database.Model(&models.ExerciseRecord{}).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Where("user_id = ? AND date >= ?", userID, fromStart).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

func (repo *ExerciseRecordRepository) Create(record *models.ExerciseRecord) error {
	return repo.database.Create(record).Error
}
