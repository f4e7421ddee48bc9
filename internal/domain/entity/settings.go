package entity

import "time"

// UserSettings preferencias de notificación y visualización de un usuario.
// Exactamente una fila por usuario; se crea con defaults en el primer GET.
type UserSettings struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"userId"`
	EmailNotifications bool      `json:"emailNotifications"`
	PushNotifications  bool      `json:"pushNotifications"`
	LeaveUpdates       bool      `json:"leaveUpdates"`
	PayrollAlerts      bool      `json:"payrollAlerts"`
	AnnouncementAlerts bool      `json:"announcementAlerts"`
	Theme              string    `json:"theme"`
	Language           string    `json:"language"`
	TimeFormat         string    `json:"timeFormat"`
	DateFormat         string    `json:"dateFormat"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// DefaultSettings valores iniciales de preferencias para un usuario.
func DefaultSettings(userID int64) UserSettings {
	return UserSettings{
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  true,
		LeaveUpdates:       true,
		PayrollAlerts:      true,
		AnnouncementAlerts: true,
		Theme:              "dark",
		Language:           "en",
		TimeFormat:         "12h",
		DateFormat:         "MM/DD/YYYY",
	}
}
