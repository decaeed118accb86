package trainingprogram

import "github.com/bruno-marques98/CoreCrewApp/internal/shared/summary"

type TrainingProgramRequest struct {
	TrainingProgramID uint    `json:"trainingProgramId"`
	Name              string  `json:"name" binding:"required,max=100"`
	Description       *string `json:"description" binding:"omitempty,max=500"`
	StartDate         string  `json:"startDate" binding:"required,datestr"`
	EndDate           *string `json:"endDate" binding:"omitempty,datestr"`
	TrainerID         uint    `json:"trainerId" binding:"required"`
	Version           int64   `json:"version" binding:"gte=0"`
}

type TrainingProgramResponse struct {
	TrainingProgramID uint              `json:"trainingProgramId"`
	Name              string            `json:"name"`
	Description       *string           `json:"description"`
	StartDate         string            `json:"startDate"`
	EndDate           *string           `json:"endDate"`
	TrainerID         uint              `json:"trainerId"`
	Version           int64             `json:"version"`
	Trainer           *summary.Employee `json:"trainer"`
}
