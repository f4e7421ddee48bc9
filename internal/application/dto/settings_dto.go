package dto

// UpdateSettingsRequest sobrescritura completa de las preferencias del
// usuario (el PUT no hace merge parcial).
type UpdateSettingsRequest struct {
	EmailNotifications bool   `json:"emailNotifications"`
	PushNotifications  bool   `json:"pushNotifications"`
	LeaveUpdates       bool   `json:"leaveUpdates"`
	PayrollAlerts      bool   `json:"payrollAlerts"`
	AnnouncementAlerts bool   `json:"announcementAlerts"`
	Theme              string `json:"theme"`
	Language           string `json:"language"`
	TimeFormat         string `json:"timeFormat"`
	DateFormat         string `json:"dateFormat"`
}
