package domain

type Department struct {
	DepartmentID uint          `gorm:"primaryKey;autoIncrement"`
	Name         string        `gorm:"type:varchar(100);not null"`
	Version      int64         `gorm:"not null;default:1"`
	Employees    []EmployeeRef `gorm:"foreignKey:DepartmentID;references:DepartmentID"`
}

func (Department) TableName() string { return "departments" }
