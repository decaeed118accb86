package notification

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

// IsRead defaults to false and Timestamp to the time of insertion.
type NotificationRequest struct {
	NotificationID uint    `json:"notificationId"`
	EmployeeID     uint    `json:"employeeId" binding:"required"`
	Title          string  `json:"title" binding:"required,max=200"`
	Message        string  `json:"message" binding:"required,max=1000"`
	IsRead         *bool   `json:"isRead"`
	Timestamp      *string `json:"timestamp" binding:"omitempty,datestr"`
	Version        int64   `json:"version" binding:"gte=0"`
}

type NotificationResponse struct {
	NotificationID uint              `json:"notificationId"`
	EmployeeID     uint              `json:"employeeId"`
	Title          string            `json:"title"`
	Message        string            `json:"message"`
	IsRead         bool              `json:"isRead"`
	Timestamp      string            `json:"timestamp"`
	Version        int64             `json:"version"`
	Employee       *summary.Employee `json:"employee"`
}
