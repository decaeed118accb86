package domain

import "time"

type Notification struct {
	NotificationID uint      `gorm:"primaryKey;autoIncrement"`
	EmployeeID     uint      `gorm:"not null;index"`
	Title          string    `gorm:"type:varchar(200);not null"`
	Message        string    `gorm:"type:varchar(1000);not null"`
	IsRead         bool      `gorm:"not null;default:false"`
	Timestamp      time.Time `gorm:"not null"`
	Version        int64     `gorm:"not null;default:1"`
	Employee       *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Notification) TableName() string { return "notifications" }
