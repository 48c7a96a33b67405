package db

import "gorm.io/gorm"

type Repositories struct {
	Users   *UserRepository
	Records *ExerciseRecordRepository
	Goals   *GoalRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Records: NewExerciseRecordRepository(database),
		Goals:   NewGoalRepository(database),
	}
}
