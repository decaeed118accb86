package employee

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

type EmployeeRequest struct {
	EmployeeID   uint   `json:"employeeId"`
	FirstName    string `json:"firstName" binding:"required,max=100"`
	LastName     string `json:"lastName" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email,max=100"`
	HireDate     string `json:"hireDate" binding:"required,datestr"`
	DepartmentID uint   `json:"departmentId" binding:"required"`
	Version      int64  `json:"version" binding:"gte=0"`
}

type EmployeeResponse struct {
	EmployeeID   uint                `json:"employeeId"`
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Email        string              `json:"email"`
	HireDate     string              `json:"hireDate"`
	DepartmentID uint                `json:"departmentId"`
	Version      int64               `json:"version"`
	Department   *summary.Department `json:"department"`
}
