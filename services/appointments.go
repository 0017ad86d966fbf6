package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"oviss-backend/models"
	"oviss-backend/storage"
)

// ErrAppointmentNotFound is returned by Update and Cancel when no record
// matches the given id.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentManager owns the authoritative appointment list for the
// session. Every mutation is followed by a write-through to the key-value
// store (unless persistence is disabled) and a notification.
type AppointmentManager struct {
	mu       sync.Mutex
	store    storage.KV
	notifier *Notifier
	persist  bool
	appts    []models.Appointment
}

func NewAppointmentManager(store storage.KV, notifier *Notifier, persist bool) *AppointmentManager {
	return &AppointmentManager{store: store, notifier: notifier, persist: persist}
}

// Load restores the persisted collection. A missing key means an empty
// collection; a corrupt blob is logged and treated the same way.
func (m *AppointmentManager) Load(ctx context.Context) {
	if !m.persist {
		return
	}
	raw, err := m.store.Get(ctx, models.StoreKeyAppointments)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		log.Printf("appointments: load failed: %v", err)
		return
	}
	var appts []models.Appointment
	if err := json.Unmarshal(raw, &appts); err != nil {
		log.Printf("appointments: discarding corrupt stored data: %v", err)
		return
	}
	m.mu.Lock()
	m.appts = appts
	m.mu.Unlock()
}

// Add prepends the record so the collection stays most-recent-first.
func (m *AppointmentManager) Add(ctx context.Context, appt models.Appointment) {
	m.mu.Lock()
	m.appts = append([]models.Appointment{appt}, m.appts...)
	m.writeThrough(ctx)
	m.mu.Unlock()

	m.notifier.Emit(
		"Booking Confirmed!",
		fmt.Sprintf("Your appointment on %s at %s is confirmed.", appt.Date, appt.Time),
		models.NotificationBooking,
	)
}

// Update replaces the record with the matching id in place, preserving the
// order of the collection.
func (m *AppointmentManager) Update(ctx context.Context, appt models.Appointment) error {
	m.mu.Lock()
	found := false
	for i := range m.appts {
		if m.appts[i].ID == appt.ID {
			m.appts[i] = appt
			found = true
			break
		}
	}
	if found {
		m.writeThrough(ctx)
	}
	m.mu.Unlock()

	if !found {
		return ErrAppointmentNotFound
	}
	m.notifier.Emit(
		"Booking Rescheduled",
		fmt.Sprintf("Your appointment has been moved to %s at %s.", appt.Date, appt.Time),
		models.NotificationBooking,
	)
	return nil
}

// Cancel removes the record outright. This is a hard delete, not a status
// transition.
func (m *AppointmentManager) Cancel(ctx context.Context, id string) error {
	m.mu.Lock()
	found := false
	for i := range m.appts {
		if m.appts[i].ID == id {
			m.appts = append(m.appts[:i], m.appts[i+1:]...)
			found = true
			break
		}
	}
	if found {
		m.writeThrough(ctx)
	}
	m.mu.Unlock()

	if !found {
		return ErrAppointmentNotFound
	}
	m.notifier.Emit(
		"Booking Cancelled",
		"Your appointment has been successfully cancelled.",
		models.NotificationBooking,
	)
	return nil
}

// All returns a snapshot of the full collection in order.
func (m *AppointmentManager) All() []models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Appointment, len(m.appts))
	copy(out, m.appts)
	return out
}

// Upcoming returns the records with status upcoming, preserving order.
func (m *AppointmentManager) Upcoming() []models.Appointment {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.Status == models.StatusUpcoming {
			out = append(out, a)
		}
	}
	return out
}

// Get returns the record with the given id.
func (m *AppointmentManager) Get(id string) (models.Appointment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// CompletePast marks upcoming appointments whose date and time are before
// now as completed. Returns the number of records flipped.
func (m *AppointmentManager) CompletePast(ctx context.Context, now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	changed := 0
	for i := range m.appts {
		if m.appts[i].Status != models.StatusUpcoming {
			continue
		}
		at, err := time.ParseInLocation("2006-01-02 15:04", m.appts[i].Date+" "+m.appts[i].Time, now.Location())
		if err != nil {
			continue
		}
		if at.Before(now) {
			m.appts[i].Status = models.StatusCompleted
			changed++
		}
	}
	if changed > 0 {
		m.writeThrough(ctx)
	}
	return changed
}

// writeThrough persists the full collection. Callers hold the mutex.
// Failures are logged and swallowed: a mutation plus its write is treated
// as one synchronous unit and the in-memory state stays authoritative.
func (m *AppointmentManager) writeThrough(ctx context.Context) {
	if !m.persist {
		return
	}
	raw, err := json.Marshal(m.appts)
	if err != nil {
		log.Printf("appointments: marshal failed: %v", err)
		return
	}
	if err := m.store.Set(ctx, models.StoreKeyAppointments, raw); err != nil {
		log.Printf("appointments: persist failed: %v", err)
	}
}
