package employeetraining

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

// EmployeeTrainingRequest carries the composite key in the body; on update both
// parts must match the path.
type EmployeeTrainingRequest struct {
	EmployeeID        uint    `json:"employeeId" binding:"required"`
	TrainingProgramID uint    `json:"trainingProgramId" binding:"required"`
	EnrollmentDate    string  `json:"enrollmentDate" binding:"required,datestr"`
	CompletionDate    *string `json:"completionDate" binding:"omitempty,datestr"`
	Version           int64   `json:"version" binding:"gte=0"`
}

type EmployeeTrainingResponse struct {
	EmployeeID        uint                     `json:"employeeId"`
	TrainingProgramID uint                     `json:"trainingProgramId"`
	EnrollmentDate    string                   `json:"enrollmentDate"`
	CompletionDate    *string                  `json:"completionDate"`
	Version           int64                    `json:"version"`
	Employee          *summary.Employee        `json:"employee"`
	TrainingProgram   *summary.TrainingProgram `json:"trainingProgram"`
}
