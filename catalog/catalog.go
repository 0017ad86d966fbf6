// Package catalog holds the static reference data: services, stylists and
// outlets. The collections are read-only; lookups report misses explicitly
// so callers can render an "Unknown"/"Any" fallback instead of failing.
package catalog

import (
	"sort"

	"oviss-backend/models"
)

type Store struct {
	services []models.Service
	stylists []models.Stylist
	outlets  []models.Outlet
}

// New builds a store over the given collections. The slices are taken as-is
// and must not be mutated afterwards.
func New(services []models.Service, stylists []models.Stylist, outlets []models.Outlet) *Store {
	return &Store{services: services, stylists: stylists, outlets: outlets}
}

// Default returns a store seeded with the standard Oviss catalog.
func Default() *Store {
	return New(seedServices, seedStylists, seedOutlets)
}

func (s *Store) Services() []models.Service { return s.services }
func (s *Store) Stylists() []models.Stylist { return s.stylists }
func (s *Store) Outlets() []models.Outlet   { return s.outlets }

func (s *Store) ServiceByID(id string) (models.Service, bool) {
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

func (s *Store) StylistByID(id string) (models.Stylist, bool) {
	for _, st := range s.stylists {
		if st.ID == id {
			return st, true
		}
	}
	return models.Stylist{}, false
}

func (s *Store) OutletByID(id string) (models.Outlet, bool) {
	for _, o := range s.outlets {
		if o.ID == id {
			return o, true
		}
	}
	return models.Outlet{}, false
}

// AllSlots returns the union of every stylist's available slots, sorted and
// de-duplicated. Used when a booking has no stylist preference.
func (s *Store) AllSlots() []string {
	seen := make(map[string]bool)
	var slots []string
	for _, st := range s.stylists {
		for _, slot := range st.AvailableSlots {
			if !seen[slot] {
				seen[slot] = true
				slots = append(slots, slot)
			}
		}
	}
	sort.Strings(slots)
	return slots
}
