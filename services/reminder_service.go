package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"oviss-backend/catalog"
	"oviss-backend/models"
)

// ReminderService runs the daily maintenance sweep: appointments whose
// slot has passed are marked completed, and a reminder notification is
// emitted for every appointment happening tomorrow. When Twilio is
// configured the reminder is also delivered by SMS.
type ReminderService struct {
	manager  *AppointmentManager
	notifier *Notifier
	session  *Session
	catalog  *catalog.Store

	client *twilio.RestClient
	from   string
}

func NewReminderService(manager *AppointmentManager, notifier *Notifier, session *Session, cat *catalog.Store) *ReminderService {
	return &ReminderService{
		manager:  manager,
		notifier: notifier,
		session:  session,
		catalog:  cat,
	}
}

// EnableSMS wires a Twilio client for outbound delivery.
func (s *ReminderService) EnableSMS(accountSid, authToken, from string) {
	s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	s.from = from
}

// StartScheduler runs the sweep every day at 9 AM.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()
	c.AddFunc("0 9 * * *", func() {
		s.Run(context.Background(), time.Now())
	})
	c.Start()
	log.Println("Reminder scheduler started")
	return c
}

// Run performs one sweep at the given time.
func (s *ReminderService) Run(ctx context.Context, now time.Time) {
	if n := s.manager.CompletePast(ctx, now); n > 0 {
		log.Printf("Marked %d past appointment(s) completed", n)
	}

	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	for _, appt := range s.manager.Upcoming() {
		if appt.Date != tomorrow {
			continue
		}
		message := s.reminderMessage(appt)
		s.notifier.Emit("Appointment Reminder", message, models.NotificationReminder)
		s.sendSMS(appt, message)
	}
}

func (s *ReminderService) reminderMessage(appt models.Appointment) string {
	where := "Oviss Salon"
	if outlet, ok := s.catalog.OutletByID(appt.OutletID); ok {
		where = outlet.Name
	}
	return fmt.Sprintf("See you tomorrow at %s, %s at %s.", appt.Time, appt.Date, where)
}

func (s *ReminderService) sendSMS(appt models.Appointment, message string) {
	if s.client == nil {
		return
	}
	user, ok := s.session.User()
	if !ok || user.ID != appt.UserID || user.Phone == "" {
		return
	}

	to := user.Phone
	from := s.from
	if strings.HasPrefix(to, "+") {
		to = "whatsapp:" + to
		from = "whatsapp:" + from
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", user.Phone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", user.Phone, *resp.Sid)
	}
}
