package domain

import "time"

type EmployeeBenefit struct {
	EmployeeID     uint      `gorm:"primaryKey;autoIncrement:false"`
	BenefitID      uint      `gorm:"primaryKey;autoIncrement:false;index"`
	EnrollmentDate time.Time `gorm:"type:date;not null"`
	Version        int64     `gorm:"not null;default:1"`
	Employee       *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Benefit        *Benefit  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (EmployeeBenefit) TableName() string { return "employee_benefits" }
