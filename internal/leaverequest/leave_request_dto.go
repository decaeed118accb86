package leaverequest

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

// Status is ignored on create. On update an omitted status means Pending.
type LeaveRequestRequest struct {
	LeaveRequestID uint    `json:"leaveRequestId"`
	EmployeeID     uint    `json:"employeeId" binding:"required"`
	StartDate      string  `json:"startDate" binding:"required,datestr"`
	EndDate        string  `json:"endDate" binding:"required,datestr"`
	Reason         string  `json:"reason" binding:"required,max=500"`
	Status         *string `json:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
	Version        int64   `json:"version" binding:"gte=0"`
}

type LeaveRequestResponse struct {
	LeaveRequestID uint              `json:"leaveRequestId"`
	EmployeeID     uint              `json:"employeeId"`
	StartDate      string            `json:"startDate"`
	EndDate        string            `json:"endDate"`
	Reason         string            `json:"reason"`
	Status         string            `json:"status"`
	Version        int64             `json:"version"`
	Employee       *summary.Employee `json:"employee"`
}
