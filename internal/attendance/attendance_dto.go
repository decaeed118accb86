package attendance

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

// CreatedAt and UpdatedAt are managed by the store.
type AttendanceRequest struct {
	AttendanceID uint   `json:"attendanceId"`
	EmployeeID   uint   `json:"employeeId" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=Present Absent OnLeave"`
	CheckInTime  string `json:"checkInTime" binding:"required,datestr"`
	CheckOutTime string `json:"checkOutTime" binding:"required,datestr"`
	Version      int64  `json:"version" binding:"gte=0"`
}

type AttendanceResponse struct {
	AttendanceID uint              `json:"attendanceId"`
	EmployeeID   uint              `json:"employeeId"`
	Status       string            `json:"status"`
	CheckInTime  string            `json:"checkInTime"`
	CheckOutTime string            `json:"checkOutTime"`
	CreatedAt    string            `json:"createdAt"`
	UpdatedAt    string            `json:"updatedAt"`
	Version      int64             `json:"version"`
	Employee     *summary.Employee `json:"employee"`
}
