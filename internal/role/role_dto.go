package role

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

type RoleRequest struct {
	RoleID  uint   `json:"roleId"`
	Name    string `json:"name" binding:"required,max=100"`
	Version int64  `json:"version" binding:"gte=0"`
}

type RoleAssignment struct {
	EmployeeID uint              `json:"employeeId"`
	RoleID     uint              `json:"roleId"`
	AssignDate string            `json:"assignDate"`
	Employee   *summary.Employee `json:"employee"`
}

type RoleResponse struct {
	RoleID        uint             `json:"roleId"`
	Name          string           `json:"name"`
	Version       int64            `json:"version"`
	EmployeeRoles []RoleAssignment `json:"employeeRoles"`
}
