package models

// NotificationSettings is the flat preferences object exchanged with
// POST /swift/notification_settings and
// GET /swift/share_preferences/{userId}/{email}/{platform}.
// The *Notifications counters are 0/1 flags on the wire.
type NotificationSettings struct {
	UserID                  int      `json:"user_id"`
	Email                   string   `json:"email"`
	DeviceType              string   `json:"device_type"`
	CommentsNotifications   int      `json:"comments_notifications"`
	LateDebtNotifications   int      `json:"late_debt_notifications"`
	ResolutionNotifications int      `json:"resolution_notifications"`
	StatusNotifications     []string `json:"status_notifications"`
}

// DeviceRegistration is the body of POST /swift/register_device/.
// RegistrationID is the push-provider token for this installation.
type DeviceRegistration struct {
	RegistrationID string `json:"registration_id"`
	DeviceType     string `json:"device_type"`
	UserID         int    `json:"user_id"`
	Email          string `json:"email"`
}
