package domain

import "time"

type Project struct {
	ProjectID        uint                 `gorm:"primaryKey;autoIncrement"`
	Name             string               `gorm:"type:varchar(100);not null"`
	Description      *string              `gorm:"type:varchar(500)"`
	StartDate        time.Time            `gorm:"type:date;not null"`
	EndDate          *time.Time           `gorm:"type:date"`
	ManagerID        uint                 `gorm:"not null;index"`
	Version          int64                `gorm:"not null;default:1"`
	Manager          *Employee            `gorm:"foreignKey:ManagerID;references:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	EmployeeProjects []EmployeeProjectRef `gorm:"foreignKey:ProjectID;references:ProjectID"`
}

func (Project) TableName() string { return "projects" }
