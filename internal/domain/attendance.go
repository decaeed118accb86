package domain

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceOnLeave AttendanceStatus = "OnLeave"
)

type Attendance struct {
	AttendanceID uint             `gorm:"primaryKey;autoIncrement"`
	EmployeeID   uint             `gorm:"not null;index"`
	Status       AttendanceStatus `gorm:"type:varchar(20);not null;check:chk_attendances_status,status IN ('Present','Absent','OnLeave')"`
	CheckInTime  time.Time        `gorm:"not null"`
	CheckOutTime time.Time        `gorm:"not null"`
	CreatedAt    time.Time        `gorm:"not null"`
	UpdatedAt    time.Time        `gorm:"not null"`
	Version      int64            `gorm:"not null;default:1"`
	Employee     *Employee        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Attendance) TableName() string { return "attendances" }
