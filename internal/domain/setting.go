package domain

type Setting struct {
	SettingID   uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value       string  `gorm:"type:varchar(500);not null"`
	Type        *string `gorm:"type:varchar(100)"`
	Description *string `gorm:"type:varchar(1000)"`
	Version     int64   `gorm:"not null;default:1"`
}

func (Setting) TableName() string { return "settings" }
