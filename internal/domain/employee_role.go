package domain

import "time"

type EmployeeRole struct {
	EmployeeID uint      `gorm:"primaryKey;autoIncrement:false"`
	RoleID     uint      `gorm:"primaryKey;autoIncrement:false;index"`
	AssignDate time.Time `gorm:"type:date;not null"`
	Version    int64     `gorm:"not null;default:1"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Role       *Role     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (EmployeeRole) TableName() string { return "employee_roles" }

// EmployeeRoleRef is loaded through Role.EmployeeRoles.
type EmployeeRoleRef struct {
	EmployeeID uint      `gorm:"primaryKey;autoIncrement:false"`
	RoleID     uint      `gorm:"primaryKey;autoIncrement:false;index"`
	AssignDate time.Time `gorm:"type:date;not null"`
	Version    int64     `gorm:"not null;default:1"`
	Employee   *Employee
}

func (EmployeeRoleRef) TableName() string { return "employee_roles" }
