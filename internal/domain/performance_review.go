package domain

import "time"

type PerformanceReview struct {
	PerformanceReviewID uint      `gorm:"primaryKey;autoIncrement"`
	EmployeeID          uint      `gorm:"not null;index"`
	ReviewDate          time.Time `gorm:"type:date;not null"`
	ReviewComments      *string   `gorm:"type:varchar(500)"`
	Rating              int       `gorm:"not null;check:chk_performance_reviews_rating,rating BETWEEN 1 AND 5"`
	Version             int64     `gorm:"not null;default:1"`
	Employee            *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (PerformanceReview) TableName() string { return "performance_reviews" }
