package services

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"oviss-backend/models"
	"oviss-backend/storage"
)

func testAppointment(id string) models.Appointment {
	return models.Appointment{
		ID:         id,
		UserID:     "u1",
		OutletID:   "o1",
		StylistID:  "s1",
		ServiceIDs: []string{"1"},
		Date:       "2024-06-10",
		Time:       "10:00",
		Status:     models.StatusUpcoming,
	}
}

func TestAddThenCancelRestoresCollection(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	m := NewAppointmentManager(store, NewNotifier(), true)

	m.Add(ctx, testAppointment("a1"))
	before := m.All()

	m.Add(ctx, testAppointment("a2"))
	if err := m.Cancel(ctx, "a2"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	after := m.All()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("collection not restored: before %+v, after %+v", before, after)
	}
	for _, a := range after {
		if a.ID == "a2" {
			t.Fatal("cancelled record still present")
		}
	}
}

func TestAddPrepends(t *testing.T) {
	ctx := context.Background()
	m := NewAppointmentManager(storage.NewMemory(), NewNotifier(), false)

	m.Add(ctx, testAppointment("a1"))
	m.Add(ctx, testAppointment("a2"))

	all := m.All()
	if len(all) != 2 || all[0].ID != "a2" || all[1].ID != "a1" {
		t.Fatalf("expected most-recent-first ordering, got %+v", all)
	}
}

func TestUpdatePreservesOrder(t *testing.T) {
	ctx := context.Background()
	m := NewAppointmentManager(storage.NewMemory(), NewNotifier(), false)
	m.Add(ctx, testAppointment("a1"))
	m.Add(ctx, testAppointment("a2"))
	m.Add(ctx, testAppointment("a3"))

	changed := testAppointment("a2")
	changed.Date = "2024-07-01"
	if err := m.Update(ctx, changed); err != nil {
		t.Fatalf("Update: %v", err)
	}

	all := m.All()
	ids := []string{all[0].ID, all[1].ID, all[2].ID}
	if !reflect.DeepEqual(ids, []string{"a3", "a2", "a1"}) {
		t.Fatalf("order changed: %v", ids)
	}
	if all[1].Date != "2024-07-01" {
		t.Fatalf("record not replaced: %+v", all[1])
	}
}

func TestUpdateMissing(t *testing.T) {
	m := NewAppointmentManager(storage.NewMemory(), NewNotifier(), false)
	err := m.Update(context.Background(), testAppointment("ghost"))
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("Update(missing) = %v, want ErrAppointmentNotFound", err)
	}
}

func TestCancelMissing(t *testing.T) {
	notifier := NewNotifier()
	m := NewAppointmentManager(storage.NewMemory(), notifier, false)
	if err := m.Cancel(context.Background(), "ghost"); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("Cancel(missing) = %v, want ErrAppointmentNotFound", err)
	}
	if notifier.Count() != 0 {
		t.Fatal("failed cancel emitted a notification")
	}
}

func TestUpcomingFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	m := NewAppointmentManager(storage.NewMemory(), NewNotifier(), false)

	done := testAppointment("a1")
	done.Status = models.StatusCompleted
	m.Add(ctx, done)
	m.Add(ctx, testAppointment("a2"))

	upcoming := m.Upcoming()
	if len(upcoming) != 1 || upcoming[0].ID != "a2" {
		t.Fatalf("Upcoming = %+v, want only a2", upcoming)
	}

	// Idempotent: a second call returns the same result.
	if again := m.Upcoming(); !reflect.DeepEqual(upcoming, again) {
		t.Fatalf("Upcoming not idempotent: %+v vs %+v", upcoming, again)
	}
}

func TestCancelNotifications(t *testing.T) {
	ctx := context.Background()
	notifier := NewNotifier()
	m := NewAppointmentManager(storage.NewMemory(), notifier, false)

	m.Add(ctx, testAppointment("a1"))
	if err := m.Cancel(ctx, "a1"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	notifs := notifier.List()
	if len(notifs) != 2 {
		t.Fatalf("got %d notifications, want 2", len(notifs))
	}
	if notifs[0].Title != "Booking Cancelled" {
		t.Errorf("newest notification = %q, want Booking Cancelled", notifs[0].Title)
	}
	if notifs[1].Title != "Booking Confirmed!" {
		t.Errorf("older notification = %q, want Booking Confirmed!", notifs[1].Title)
	}
}

func TestWriteThroughRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	m := NewAppointmentManager(store, NewNotifier(), true)
	m.Add(ctx, testAppointment("a1"))

	reloaded := NewAppointmentManager(store, NewNotifier(), true)
	reloaded.Load(ctx)
	if !reflect.DeepEqual(m.All(), reloaded.All()) {
		t.Fatalf("round trip mismatch: %+v vs %+v", m.All(), reloaded.All())
	}
}

func TestPersistenceDisabled(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	m := NewAppointmentManager(store, NewNotifier(), false)
	m.Add(ctx, testAppointment("a1"))

	if _, err := store.Get(ctx, models.StoreKeyAppointments); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("store written despite persistence disabled (err = %v)", err)
	}
}

func TestLoadCorruptDataFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	store.Set(ctx, models.StoreKeyAppointments, []byte("{not json"))

	m := NewAppointmentManager(store, NewNotifier(), true)
	m.Load(ctx)
	if got := len(m.All()); got != 0 {
		t.Fatalf("loaded %d records from corrupt blob, want 0", got)
	}
}

func TestCompletePast(t *testing.T) {
	ctx := context.Background()
	m := NewAppointmentManager(storage.NewMemory(), NewNotifier(), false)

	past := testAppointment("a1")
	past.Date = "2024-06-01"
	future := testAppointment("a2")
	future.Date = "2024-06-20"
	m.Add(ctx, past)
	m.Add(ctx, future)

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	if n := m.CompletePast(ctx, now); n != 1 {
		t.Fatalf("CompletePast flipped %d records, want 1", n)
	}

	for _, a := range m.All() {
		switch a.ID {
		case "a1":
			if a.Status != models.StatusCompleted {
				t.Errorf("past appointment status = %q, want completed", a.Status)
			}
		case "a2":
			if a.Status != models.StatusUpcoming {
				t.Errorf("future appointment status = %q, want upcoming", a.Status)
			}
		}
	}
}

func TestPersistedBlobIsJSONArray(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	m := NewAppointmentManager(store, NewNotifier(), true)
	m.Add(ctx, testAppointment("a1"))

	raw, err := store.Get(ctx, models.StoreKeyAppointments)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var appts []models.Appointment
	if err := json.Unmarshal(raw, &appts); err != nil {
		t.Fatalf("stored blob is not a JSON appointment list: %v", err)
	}
	if len(appts) != 1 || appts[0].ID != "a1" {
		t.Fatalf("unexpected stored contents: %+v", appts)
	}
}
