package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"oviss-backend/models"
)

// Notifier owns the in-memory notification feed. Records are prepended so
// the newest entry is always first; nothing is persisted and nothing is
// ever mutated after emission.
type Notifier struct {
	mu   sync.Mutex
	list []models.Notification
	now  func() time.Time
}

func NewNotifier() *Notifier {
	return &Notifier{now: time.Now}
}

// Emit constructs a notification and prepends it to the feed.
func (n *Notifier) Emit(title, message, typ string) models.Notification {
	notif := models.Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: n.now(),
	}
	n.mu.Lock()
	n.list = append([]models.Notification{notif}, n.list...)
	n.mu.Unlock()
	return notif
}

// List returns a snapshot of the feed, newest first.
func (n *Notifier) List() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.Notification, len(n.list))
	copy(out, n.list)
	return out
}

func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.list)
}
