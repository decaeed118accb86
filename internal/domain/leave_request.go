package domain

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

type LeaveRequest struct {
	LeaveRequestID uint        `gorm:"primaryKey;autoIncrement"`
	EmployeeID     uint        `gorm:"not null;index"`
	StartDate      time.Time   `gorm:"type:date;not null"`
	EndDate        time.Time   `gorm:"type:date;not null"`
	Reason         string      `gorm:"type:varchar(500);not null"`
	Status         LeaveStatus `gorm:"type:varchar(20);not null;default:'Pending';check:chk_leave_requests_status,status IN ('Pending','Approved','Rejected')"`
	Version        int64       `gorm:"not null;default:1"`
	Employee       *Employee   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }
