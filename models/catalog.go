package models

// Catalog entities are immutable seed data. They are never created or
// destroyed at runtime and carry no storage concerns.

type Service struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"` // in minutes
}

type Stylist struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Bio            string   `json:"bio,omitempty"`
	Photo          string   `json:"photo"`
	AvailableSlots []string `json:"availableSlots"`
}

type Outlet struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Photo   string `json:"photo"`
}
