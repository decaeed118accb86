package domain

import "time"

type EmployeeTraining struct {
	EmployeeID        uint             `gorm:"primaryKey;autoIncrement:false"`
	TrainingProgramID uint             `gorm:"primaryKey;autoIncrement:false;index"`
	EnrollmentDate    time.Time        `gorm:"type:date;not null"`
	CompletionDate    *time.Time       `gorm:"type:date"`
	Version           int64            `gorm:"not null;default:1"`
	Employee          *Employee        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	TrainingProgram   *TrainingProgram `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (EmployeeTraining) TableName() string { return "employee_trainings" }
