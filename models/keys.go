package models

// Fixed keys used by the persistence adapter. Absence of the user key
// means logged out; absence of the appointments key means an empty
// collection.
const (
	StoreKeyUser         = "salon_user"
	StoreKeyAppointments = "salon_appointments"
)
