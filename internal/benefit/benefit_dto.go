package benefit

import "github.com/shopspring/decimal"

// Cost is accepted as a JSON number or string and always returned as a
// two-decimal string.
type BenefitRequest struct {
	BenefitID   uint             `json:"benefitId"`
	Name        string           `json:"name" binding:"required,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Cost        *decimal.Decimal `json:"cost" binding:"required"`
	Version     int64            `json:"version" binding:"gte=0"`
}

type BenefitResponse struct {
	BenefitID   uint    `json:"benefitId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Cost        string  `json:"cost"`
	Version     int64   `json:"version"`
}
