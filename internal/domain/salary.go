package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Salary struct {
	SalaryID      uint            `gorm:"primaryKey;autoIncrement"`
	EmployeeID    uint            `gorm:"not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null;check:chk_salaries_amount,amount >= 0"`
	EffectiveDate time.Time       `gorm:"type:date;not null"`
	EndDate       *time.Time      `gorm:"type:date"`
	Version       int64           `gorm:"not null;default:1"`
	Employee      *Employee       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Salary) TableName() string { return "salaries" }
