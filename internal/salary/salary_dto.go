package salary

import (
	"github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

	"github.com/shopspring/decimal"
)

type SalaryRequest struct {
	SalaryID      uint             `json:"salaryId"`
	EmployeeID    uint             `json:"employeeId" binding:"required"`
	Amount        *decimal.Decimal `json:"amount" binding:"required"`
	EffectiveDate string           `json:"effectiveDate" binding:"required,datestr"`
	EndDate       *string          `json:"endDate" binding:"omitempty,datestr"`
	Version       int64            `json:"version" binding:"gte=0"`
}

type SalaryResponse struct {
	SalaryID      uint              `json:"salaryId"`
	EmployeeID    uint              `json:"employeeId"`
	Amount        string            `json:"amount"`
	EffectiveDate string            `json:"effectiveDate"`
	EndDate       *string           `json:"endDate"`
	Version       int64             `json:"version"`
	Employee      *summary.Employee `json:"employee"`
}
