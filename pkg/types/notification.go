package types

import "time"

// NotificationSeverity represents the severity of a notification
type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeveritySuccess NotificationSeverity = "success"
	SeverityWarning NotificationSeverity = "warning"
	SeverityError   NotificationSeverity = "error"
)

// Notification is one entry in the append-only notification log. The only
// mutation ever applied is the read flag flipping false to true.
type Notification struct {
	ID                string               `json:"id"`
	RecipientUsername string               `json:"recipient_username"`
	Title             string               `json:"title"`
	Message           string               `json:"message"`
	Severity          NotificationSeverity `json:"severity"`
	Read              bool                 `json:"read"`
	CreatedAt         time.Time            `json:"created_at"`
}
