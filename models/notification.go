package models

import "time"

// Notification types.
const (
	NotificationBooking   = "booking"
	NotificationReminder  = "reminder"
	NotificationMarketing = "marketing"
)

// Notification is an ephemeral in-process record. The list lives only for
// the lifetime of the session and is never persisted.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}
