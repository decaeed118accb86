package domain

import "time"

type TrainingProgram struct {
	TrainingProgramID uint       `gorm:"primaryKey;autoIncrement"`
	Name              string     `gorm:"type:varchar(100);not null"`
	Description       *string    `gorm:"type:varchar(500)"`
	StartDate         time.Time  `gorm:"type:date;not null"`
	EndDate           *time.Time `gorm:"type:date"`
	TrainerID         uint       `gorm:"not null;index"`
	Version           int64      `gorm:"not null;default:1"`
	Trainer           *Employee  `gorm:"foreignKey:TrainerID;references:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (TrainingProgram) TableName() string { return "training_programs" }
