package db

import (
	"time"

	"github.com/terraincognita07/myfit/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) FindByUser(userID uint) (models.Goal, bool, error) {
	goal := models.Goal{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&goal)
	if result.Error != nil {
		return models.Goal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Goal{}, false, nil
	}
	return goal, true, nil
}

// Upsert keeps a single goal row per user.
func (repo *GoalRepository) Upsert(userID uint, goalType string, targetMinutes int) (models.Goal, error) {
	now := time.Now().UTC()
	goal := models.Goal{
		UserID:        userID,
		Type:          goalType,
		TargetMinutes: targetMinutes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	stored := models.Goal{}
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "target_minutes", "updated_at"}),
		}).Create(&goal).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).First(&stored).Error
	})
	if err != nil {
		return models.Goal{}, err
	}
	return stored, nil
}
