package console

import (
	"context"
	"fmt"
	"time"
)

// AppointmentStatus is the lifecycle state of a booking
type AppointmentStatus = string

const (
	AppointmentStatusBooked      AppointmentStatus = "booked"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusFinished    AppointmentStatus = "finished"
)

// Appointment is a scheduled consultation as the API reports it.
type Appointment struct {
	ID          string            `json:"id"`
	PatientName string            `json:"patient_name"`
	Status      AppointmentStatus `json:"status"`
	Type        string            `json:"type"`
	StartsAt    time.Time         `json:"starts_at"`
	Duration    int               `json:"duration_minutes"`
	Notes       string            `json:"notes,omitempty"`
}

// Pending reports whether the appointment still expects the patient.
func (a Appointment) Pending() bool {
	switch a.Status {
	case AppointmentStatusBooked, AppointmentStatusConfirmed, AppointmentStatusRescheduled:
		return true
	default:
		return false
	}
}

// AppointmentsService lists and updates the practitioner's schedule through
// the authenticated API client.
type AppointmentsService struct {
	api *APIClient
}

func NewAppointmentsService(api *APIClient) *AppointmentsService {
	return &AppointmentsService{api: api}
}

// List returns the schedule as the server scopes it to the session token.
func (s *AppointmentsService) List(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	if err := s.api.Get(ctx, "/appointments", &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// Upcoming filters the schedule down to pending appointments starting
// within the given window from now.
func (s *AppointmentsService) Upcoming(ctx context.Context, within time.Duration) ([]Appointment, error) {
	appointments, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	upcoming := make([]Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if !appointment.Pending() {
			continue
		}
		if appointment.StartsAt.Before(now) || appointment.StartsAt.Sub(now) > within {
			continue
		}
		upcoming = append(upcoming, appointment)
	}
	return upcoming, nil
}

// Confirm marks a booked appointment as confirmed.
func (s *AppointmentsService) Confirm(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, AppointmentStatusConfirmed)
}

// Cancel cancels an appointment.
func (s *AppointmentsService) Cancel(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, AppointmentStatusCancelled)
}

func (s *AppointmentsService) setStatus(ctx context.Context, id string, status AppointmentStatus) error {
	payload := map[string]string{"status": status}
	return s.api.Put(ctx, fmt.Sprintf("/appointments/%s", id), payload, nil)
}
