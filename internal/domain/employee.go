package domain

import "time"

type Employee struct {
	EmployeeID   uint        `gorm:"primaryKey;autoIncrement"`
	FirstName    string      `gorm:"type:varchar(100);not null"`
	LastName     string      `gorm:"type:varchar(100);not null"`
	Email        string      `gorm:"type:varchar(100);not null;index"`
	HireDate     time.Time   `gorm:"type:date;not null"`
	DepartmentID uint        `gorm:"not null;index"`
	Version      int64       `gorm:"not null;default:1"`
	Department   *Department `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Employee) TableName() string { return "employees" }

// EmployeeRef is the employees row as seen from a has-many relation.
// Column tags must stay identical to Employee.
type EmployeeRef struct {
	EmployeeID   uint      `gorm:"primaryKey;autoIncrement"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(100);not null;index"`
	HireDate     time.Time `gorm:"type:date;not null"`
	DepartmentID uint      `gorm:"not null;index"`
	Version      int64     `gorm:"not null;default:1"`
}

func (EmployeeRef) TableName() string { return "employees" }
