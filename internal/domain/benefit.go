package domain

import "github.com/shopspring/decimal"

type Benefit struct {
	BenefitID   uint            `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Description *string         `gorm:"type:varchar(500)"`
	Cost        decimal.Decimal `gorm:"type:decimal(18,2);not null;check:chk_benefits_cost,cost >= 0"`
	Version     int64           `gorm:"not null;default:1"`
}

func (Benefit) TableName() string { return "benefits" }
