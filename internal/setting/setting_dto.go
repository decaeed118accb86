package setting

type SettingRequest struct {
	SettingID   uint    `json:"settingId"`
	Name        string  `json:"name" binding:"required,max=100"`
	Value       string  `json:"value" binding:"required,max=500"`
	Type        *string `json:"type" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Version     int64   `json:"version" binding:"gte=0"`
}

type SettingResponse struct {
	SettingID   uint    `json:"settingId"`
	Name        string  `json:"name"`
	Value       string  `json:"value"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Version     int64   `json:"version"`
}
