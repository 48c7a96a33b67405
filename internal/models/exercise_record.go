package models

import "time"

type ExerciseRecord struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"-"`
	Name            string    `gorm:"not null" json:"name"`
	DurationMinutes int       `gorm:"column:duration_minutes;not null;default:0" json:"duration_minutes"`
	Calories        int       `gorm:"not null;default:0" json:"calories"`
	Date            time.Time `gorm:"type:date;not null;index" json:"date"`
	CreatedAt       time.Time `json:"created_at"`
}
