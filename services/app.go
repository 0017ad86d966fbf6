package services

import (
	"context"

	"oviss-backend/catalog"
	"oviss-backend/storage"
)

// App is the explicit application state: catalog, session, appointment
// collection, notification feed and the booking workflow. It is built once
// at startup and handed to the HTTP layer; there are no package globals.
type App struct {
	Catalog      *catalog.Store
	Session      *Session
	Appointments *AppointmentManager
	Notifier     *Notifier
	Booking      *Workflow
	Reminders    *ReminderService
}

// NewApp wires the components over the given store. persistAppointments
// mirrors the configuration choice of whether the appointment list
// survives a restart; the user record is always persisted.
func NewApp(store storage.KV, persistAppointments bool) *App {
	cat := catalog.Default()
	notifier := NewNotifier()
	session := NewSession(store)
	manager := NewAppointmentManager(store, notifier, persistAppointments)
	return &App{
		Catalog:      cat,
		Session:      session,
		Appointments: manager,
		Notifier:     notifier,
		Booking:      NewWorkflow(cat, manager),
		Reminders:    NewReminderService(manager, notifier, session, cat),
	}
}

// Load restores persisted state. Corrupt or missing blobs degrade to
// logged-out / empty rather than failing startup.
func (a *App) Load(ctx context.Context) {
	a.Session.Load(ctx)
	a.Appointments.Load(ctx)
}
