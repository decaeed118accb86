package domain

import "time"

type EmployeeProject struct {
	EmployeeID     uint      `gorm:"primaryKey;autoIncrement:false"`
	ProjectID      uint      `gorm:"primaryKey;autoIncrement:false;index"`
	AssignmentDate time.Time `gorm:"type:date;not null"`
	Version        int64     `gorm:"not null;default:1"`
	Employee       *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Project        *Project  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (EmployeeProject) TableName() string { return "employee_projects" }

// EmployeeProjectRef is loaded through Project.EmployeeProjects.
type EmployeeProjectRef struct {
	EmployeeID     uint      `gorm:"primaryKey;autoIncrement:false"`
	ProjectID      uint      `gorm:"primaryKey;autoIncrement:false;index"`
	AssignmentDate time.Time `gorm:"type:date;not null"`
	Version        int64     `gorm:"not null;default:1"`
	Employee       *Employee
}

func (EmployeeProjectRef) TableName() string { return "employee_projects" }
