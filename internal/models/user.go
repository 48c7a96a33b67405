package models

import "time"

type User struct {
	ID                 uint      `gorm:"primaryKey"`
	Email              string    `gorm:"uniqueIndex;not null"`
	DisplayName        string    `gorm:"not null;default:''"`
	PasswordHash       string    `gorm:"not null"`
	MustChangePassword bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
}
