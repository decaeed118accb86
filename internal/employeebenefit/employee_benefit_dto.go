package employeebenefit

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

// EmployeeBenefitRequest carries the composite key in the body; on update both
// parts must match the path.
type EmployeeBenefitRequest struct {
	EmployeeID     uint   `json:"employeeId" binding:"required"`
	BenefitID      uint   `json:"benefitId" binding:"required"`
	EnrollmentDate string `json:"enrollmentDate" binding:"required,datestr"`
	Version        int64  `json:"version" binding:"gte=0"`
}

type EmployeeBenefitResponse struct {
	EmployeeID     uint              `json:"employeeId"`
	BenefitID      uint              `json:"benefitId"`
	EnrollmentDate string            `json:"enrollmentDate"`
	Version        int64             `json:"version"`
	Employee       *summary.Employee `json:"employee"`
	Benefit        *summary.Benefit  `json:"benefit"`
}
