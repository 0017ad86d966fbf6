package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"oviss-backend/catalog"
	"oviss-backend/models"
	"oviss-backend/utils"
)

// Workflow steps.
const (
	StepOutletSelection = "outlet-selection"
	StepDetailSelection = "detail-selection"
)

var (
	// ErrIncompleteBooking means confirm was attempted before outlet, date,
	// time and at least one service were chosen. The collection is left
	// untouched and no notification is emitted.
	ErrIncompleteBooking = errors.New("booking selections incomplete")

	ErrUnknownOutlet  = errors.New("unknown outlet")
	ErrUnknownStylist = errors.New("unknown stylist")
	ErrUnknownService = errors.New("unknown service")
	ErrPastDate       = errors.New("date is in the past")
	ErrBadDate        = errors.New("date must be YYYY-MM-DD")
)

// Workflow is the step-driven state machine that gathers booking
// selections and, on confirm, dispatches a create or update command to the
// appointment manager. One workflow serves the session; selections survive
// across requests until confirmed or reset.
type Workflow struct {
	mu      sync.Mutex
	catalog *catalog.Store
	manager *AppointmentManager
	now     func() time.Time

	step       string
	editID     string // non-empty while rescheduling an existing record
	outletID   string
	stylistID  string // empty means no preference
	date       string
	time       string
	serviceIDs []string
}

func NewWorkflow(cat *catalog.Store, manager *AppointmentManager) *Workflow {
	w := &Workflow{catalog: cat, manager: manager, now: time.Now}
	w.reset()
	return w
}

// callers hold the mutex
func (w *Workflow) reset() {
	w.step = StepOutletSelection
	w.editID = ""
	w.outletID = ""
	w.stylistID = ""
	w.date = ""
	w.time = ""
	w.serviceIDs = nil
}

// StartNew clears every selection and enters outlet selection.
func (w *Workflow) StartNew() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

// StartReschedule pre-populates every field from an existing appointment
// and enters detail selection directly. Dangling catalog ids are copied
// as-is; they resolve to fallbacks in display code.
func (w *Workflow) StartReschedule(appt models.Appointment) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
	w.step = StepDetailSelection
	w.editID = appt.ID
	w.outletID = appt.OutletID
	if appt.StylistID != models.NoPreference {
		w.stylistID = appt.StylistID
	}
	w.date = appt.Date
	w.time = appt.Time
	w.serviceIDs = append([]string(nil), appt.ServiceIDs...)
}

// SelectOutlet sets the outlet and advances to detail selection.
func (w *Workflow) SelectOutlet(id string) error {
	if _, ok := w.catalog.OutletByID(id); !ok {
		return ErrUnknownOutlet
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.outletID = id
	w.step = StepDetailSelection
	return nil
}

// SelectStylist sets the stylist preference; an empty id or the
// no-preference sentinel clears it. A previously chosen time is kept even
// if it is not in the new stylist's slot list.
func (w *Workflow) SelectStylist(id string) error {
	if id != "" && id != models.NoPreference {
		if _, ok := w.catalog.StylistByID(id); !ok {
			return ErrUnknownStylist
		}
	} else {
		id = ""
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stylistID = id
	return nil
}

// SelectDate sets the date. New bookings may not pick a date before today;
// reschedules keep whatever date the record already had available.
func (w *Workflow) SelectDate(date string) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ErrBadDate
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.editID == "" {
		today := utils.BeginningOfDay(w.now().UTC())
		if d.Before(today) {
			return ErrPastDate
		}
	}
	w.date = date
	return nil
}

// SelectTime sets the time. No validation against the current slot set is
// performed before confirm; AvailableSlots exists so clients can offer
// valid choices.
func (w *Workflow) SelectTime(t string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.time = t
}

// ToggleService adds the service id to the selection, or removes it if
// already present.
func (w *Workflow) ToggleService(id string) error {
	if _, ok := w.catalog.ServiceByID(id); !ok {
		return ErrUnknownService
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, s := range w.serviceIDs {
		if s == id {
			w.serviceIDs = append(w.serviceIDs[:i], w.serviceIDs[i+1:]...)
			return nil
		}
	}
	w.serviceIDs = append(w.serviceIDs, id)
	return nil
}

// Total sums the prices of the currently selected services.
func (w *Workflow) Total() float64 {
	w.mu.Lock()
	ids := append([]string(nil), w.serviceIDs...)
	w.mu.Unlock()

	var total float64
	for _, id := range ids {
		if svc, ok := w.catalog.ServiceByID(id); ok {
			total += svc.Price
		}
	}
	return total
}

// AvailableSlots returns the chosen stylist's slot list, or the union of
// all stylists' slots when there is no preference.
func (w *Workflow) AvailableSlots() []string {
	w.mu.Lock()
	id := w.stylistID
	w.mu.Unlock()

	if id != "" {
		if st, ok := w.catalog.StylistByID(id); ok {
			return append([]string(nil), st.AvailableSlots...)
		}
	}
	return w.catalog.AllSlots()
}

// Confirm builds the appointment and dispatches it to the manager: add in
// create mode, update in reschedule mode. On success all workflow state
// resets back to outlet selection.
func (w *Workflow) Confirm(ctx context.Context, userID string) (models.Appointment, error) {
	w.mu.Lock()
	if w.outletID == "" || w.date == "" || w.time == "" || len(w.serviceIDs) == 0 {
		w.mu.Unlock()
		return models.Appointment{}, ErrIncompleteBooking
	}

	appt := models.Appointment{
		ID:         uuid.New().String(),
		UserID:     userID,
		OutletID:   w.outletID,
		StylistID:  models.NoPreference,
		ServiceIDs: append([]string(nil), w.serviceIDs...),
		Date:       w.date,
		Time:       w.time,
		Status:     models.StatusUpcoming,
	}
	if w.stylistID != "" {
		appt.StylistID = w.stylistID
	}
	editID := w.editID
	if editID != "" {
		appt.ID = editID
	}
	w.reset()
	w.mu.Unlock()

	if editID != "" {
		if err := w.manager.Update(ctx, appt); err != nil {
			return models.Appointment{}, err
		}
		return appt, nil
	}
	w.manager.Add(ctx, appt)
	return appt, nil
}

// BookingState is the UI-facing view of the workflow's current selections.
type BookingState struct {
	Step           string   `json:"step"`
	EditingID      string   `json:"editingId,omitempty"`
	OutletID       string   `json:"outletId,omitempty"`
	StylistID      string   `json:"stylistId,omitempty"`
	Date           string   `json:"date,omitempty"`
	Time           string   `json:"time,omitempty"`
	ServiceIDs     []string `json:"serviceIds"`
	Total          float64  `json:"total"`
	AvailableSlots []string `json:"availableSlots"`
}

func (w *Workflow) Snapshot() BookingState {
	w.mu.Lock()
	state := BookingState{
		Step:       w.step,
		EditingID:  w.editID,
		OutletID:   w.outletID,
		StylistID:  w.stylistID,
		Date:       w.date,
		Time:       w.time,
		ServiceIDs: append([]string{}, w.serviceIDs...),
	}
	w.mu.Unlock()
	state.Total = w.Total()
	state.AvailableSlots = w.AvailableSlots()
	return state
}
