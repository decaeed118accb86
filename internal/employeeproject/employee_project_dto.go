package employeeproject

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

// EmployeeProjectRequest carries the composite key in the body; on update both
// parts must match the path.
type EmployeeProjectRequest struct {
	EmployeeID     uint   `json:"employeeId" binding:"required"`
	ProjectID      uint   `json:"projectId" binding:"required"`
	AssignmentDate string `json:"assignmentDate" binding:"required,datestr"`
	Version        int64  `json:"version" binding:"gte=0"`
}

type EmployeeProjectResponse struct {
	EmployeeID     uint              `json:"employeeId"`
	ProjectID      uint              `json:"projectId"`
	AssignmentDate string            `json:"assignmentDate"`
	Version        int64             `json:"version"`
	Employee       *summary.Employee `json:"employee"`
	Project        *summary.Project  `json:"project"`
}
