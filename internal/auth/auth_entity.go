package auth

import "time"

// User is an API account. Emails are stored lower-cased and Role is one of
// the rbac roles.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'User';check:chk_users_role,role IN ('Admin','User')"`
	LastLoginAt  *time.Time
	Version      int64 `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }
