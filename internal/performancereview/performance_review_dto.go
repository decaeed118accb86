package performancereview

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

type PerformanceReviewRequest struct {
	PerformanceReviewID uint    `json:"performanceReviewId"`
	EmployeeID          uint    `json:"employeeId" binding:"required"`
	ReviewDate          string  `json:"reviewDate" binding:"required,datestr"`
	ReviewComments      *string `json:"reviewComments" binding:"omitempty,max=500"`
	Rating              int     `json:"rating" binding:"required,min=1,max=5"`
	Version             int64   `json:"version" binding:"gte=0"`
}

type PerformanceReviewResponse struct {
	PerformanceReviewID uint              `json:"performanceReviewId"`
	EmployeeID          uint              `json:"employeeId"`
	ReviewDate          string            `json:"reviewDate"`
	ReviewComments      *string           `json:"reviewComments"`
	Rating              int               `json:"rating"`
	Version             int64             `json:"version"`
	Employee            *summary.Employee `json:"employee"`
}
