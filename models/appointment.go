package models

// Appointment statuses. Cancelling removes the record outright, so
// StatusCancelled is accepted on the wire but never produced here.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// NoPreference is the stylist id recorded when the user declines to pick
// a specific stylist.
const NoPreference = "no-preference"

// Appointment references catalog entities by id only. Dangling ids are
// tolerated; display code resolves them to "Unknown"/"Any" fallbacks.
type Appointment struct {
	ID         string   `json:"id"`
	UserID     string   `json:"userId"`
	OutletID   string   `json:"outletId"`
	StylistID  string   `json:"stylistId"`
	ServiceIDs []string `json:"serviceIds"`
	Date       string   `json:"date"` // YYYY-MM-DD
	Time       string   `json:"time"` // HH:MM
	Status     string   `json:"status"`
}
