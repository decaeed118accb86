package domain

type Role struct {
	RoleID        uint              `gorm:"primaryKey;autoIncrement"`
	Name          string            `gorm:"type:varchar(100);not null"`
	Version       int64             `gorm:"not null;default:1"`
	EmployeeRoles []EmployeeRoleRef `gorm:"foreignKey:RoleID;references:RoleID"`
}

func (Role) TableName() string { return "roles" }
