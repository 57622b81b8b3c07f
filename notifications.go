package console

import (
	"context"
	"time"
)

// Notification is a server-generated feed entry.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// ReminderWindow buckets how close an appointment is.
type ReminderWindow = string

const (
	ReminderWindowSoon ReminderWindow = "15m"
	ReminderWindowHour ReminderWindow = "1h"
	ReminderWindowDay  ReminderWindow = "24h"
)

// Reminder is synthesized locally from the schedule; it never comes from
// the server.
type Reminder struct {
	AppointmentID string
	PatientName   string
	StartsAt      time.Time
	Lead          time.Duration
	Window        ReminderWindow
}

// BuildReminders computes time-to-appointment reminders for pending
// appointments starting within the next 24 hours. Past, cancelled, and
// finished appointments never produce reminders.
func BuildReminders(appointments []Appointment, now time.Time) []Reminder {
	reminders := make([]Reminder, 0, len(appointments))
	for _, appointment := range appointments {
		if !appointment.Pending() {
			continue
		}

		lead := appointment.StartsAt.Sub(now)
		if lead <= 0 || lead > 24*time.Hour {
			continue
		}

		window := ReminderWindowDay
		switch {
		case lead <= 15*time.Minute:
			window = ReminderWindowSoon
		case lead <= time.Hour:
			window = ReminderWindowHour
		}

		reminders = append(reminders, Reminder{
			AppointmentID: appointment.ID,
			PatientName:   appointment.PatientName,
			StartsAt:      appointment.StartsAt,
			Lead:          lead,
			Window:        window,
		})
	}
	return reminders
}

// NotificationsService combines the server feed with locally synthesized
// appointment reminders.
type NotificationsService struct {
	api          *APIClient
	appointments *AppointmentsService
	logger       Logger
}

func NewNotificationsService(api *APIClient, appointments *AppointmentsService) *NotificationsService {
	return &NotificationsService{
		api:          api,
		appointments: appointments,
		logger:       defLogger{},
	}
}

func (s *NotificationsService) WithLogger(logger Logger) *NotificationsService {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Feed returns the server-side notification entries.
func (s *NotificationsService) Feed(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := s.api.Get(ctx, "/notifications", &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// Reminders fetches the schedule and synthesizes the current reminder set.
func (s *NotificationsService) Reminders(ctx context.Context) ([]Reminder, error) {
	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildReminders(appointments, time.Now()), nil
}

// Poller refreshes reminders on a single timer. There is no websocket or
// push channel; polling is the only transport.
type Poller struct {
	notifications *NotificationsService
	interval      time.Duration
	handler       func([]Reminder)
	logger        Logger
}

func NewPoller(cfg Config, notifications *NotificationsService, handler func([]Reminder)) *Poller {
	return &Poller{
		notifications: notifications,
		interval:      cfg.GetPollInterval(),
		handler:       handler,
		logger:        defLogger{},
	}
}

func (p *Poller) WithLogger(logger Logger) *Poller {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// Run refreshes immediately, then on every tick until the context is done.
// Fetch failures are logged and the loop keeps going; a SessionExpired
// failure stops the loop since the session is gone.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.refresh(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := p.refresh(ctx); err != nil {
				return err
			}
		}
	}
}

func (p *Poller) refresh(ctx context.Context) error {
	reminders, err := p.notifications.Reminders(ctx)
	if err != nil {
		if IsSessionExpiredError(err) {
			p.logger.Warn("Reminder poll stopped, session expired")
			return err
		}
		p.logger.Error("Reminder poll error", "error", err)
		return nil
	}

	if p.handler != nil {
		p.handler(reminders)
	}
	return nil
}
