package project

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

type ProjectRequest struct {
	ProjectID   uint    `json:"projectId"`
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	StartDate   string  `json:"startDate" binding:"required,datestr"`
	EndDate     *string `json:"endDate" binding:"omitempty,datestr"`
	ManagerID   uint    `json:"managerId" binding:"required"`
	Version     int64   `json:"version" binding:"gte=0"`
}

type ProjectAssignment struct {
	EmployeeID     uint              `json:"employeeId"`
	ProjectID      uint              `json:"projectId"`
	AssignmentDate string            `json:"assignmentDate"`
	Employee       *summary.Employee `json:"employee"`
}

type ProjectResponse struct {
	ProjectID        uint                `json:"projectId"`
	Name             string              `json:"name"`
	Description      *string             `json:"description"`
	StartDate        string              `json:"startDate"`
	EndDate          *string             `json:"endDate"`
	ManagerID        uint                `json:"managerId"`
	Version          int64               `json:"version"`
	Manager          *summary.Employee   `json:"manager"`
	EmployeeProjects []ProjectAssignment `json:"employeeProjects"`
}
