package models

import "time"

const GoalTypeWeeklyMinutes = "weekly_minutes"

type Goal struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex" json:"-"`
	Type          string    `gorm:"not null;default:weekly_minutes" json:"type"`
	TargetMinutes int       `gorm:"column:target_minutes;not null" json:"target_minutes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
