package employeerole

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

// EmployeeRoleRequest carries the composite key in the body; on update both
// parts must match the path.
type EmployeeRoleRequest struct {
	EmployeeID uint   `json:"employeeId" binding:"required"`
	RoleID     uint   `json:"roleId" binding:"required"`
	AssignDate string `json:"assignDate" binding:"required,datestr"`
	Version    int64  `json:"version" binding:"gte=0"`
}

type EmployeeRoleResponse struct {
	EmployeeID uint              `json:"employeeId"`
	RoleID     uint              `json:"roleId"`
	AssignDate string            `json:"assignDate"`
	Version    int64             `json:"version"`
	Employee   *summary.Employee `json:"employee"`
	Role       *summary.Role     `json:"role"`
}
