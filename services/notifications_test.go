package services

import (
	"testing"
	"time"

	"oviss-backend/models"
)

func TestNotifierPrependsNewestFirst(t *testing.T) {
	n := NewNotifier()
	n.Emit("First", "one", models.NotificationBooking)
	n.Emit("Second", "two", models.NotificationReminder)

	list := n.List()
	if len(list) != 2 {
		t.Fatalf("got %d notifications, want 2", len(list))
	}
	if list[0].Title != "Second" || list[1].Title != "First" {
		t.Fatalf("feed not newest-first: %+v", list)
	}
}

func TestNotifierFields(t *testing.T) {
	n := NewNotifier()
	fixed := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	n.now = func() time.Time { return fixed }

	notif := n.Emit("Booking Confirmed!", "details", models.NotificationBooking)
	if notif.ID == "" {
		t.Error("notification id not generated")
	}
	if !notif.Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", notif.Timestamp, fixed)
	}
	if notif.Type != models.NotificationBooking {
		t.Errorf("type = %q", notif.Type)
	}

	other := n.Emit("Second", "details", models.NotificationBooking)
	if other.ID == notif.ID {
		t.Error("notification ids collide")
	}
}
