package department

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

// DepartmentRequest is the full record for create and replace. Version is
// optional; when sent, the update only succeeds against that version.
type DepartmentRequest struct {
	DepartmentID uint   `json:"departmentId"`
	Name         string `json:"name" binding:"required,max=100"`
	Version      int64  `json:"version" binding:"gte=0"`
}

type DepartmentResponse struct {
	DepartmentID uint               `json:"departmentId"`
	Name         string             `json:"name"`
	Version      int64              `json:"version"`
	Employees    []summary.Employee `json:"employees"`
}
