package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinicdesk/internal/calendar"
	apperrors "clinicdesk/internal/errors"
	"clinicdesk/internal/model"
	"clinicdesk/internal/repository"
)

// UpcomingAppointmentsLimit caps the upcoming appointments listing.
const UpcomingAppointmentsLimit = 10

// BookInput carries a booking request. Date is YYYY-MM-DD, Time is HH:MM.
type BookInput struct {
	DoctorID    string
	PatientName string
	Date        string
	Time        string
	Reason      string
}

// UpdateInput carries a partial update. Nil fields are left unchanged; the
// appointment time is only recomputed when both Date and Time are set.
type UpdateInput struct {
	Date   *string
	Time   *string
	Status *string
	Reason *string
}

// AppointmentService handles booking and appointment lookups.
type AppointmentService interface {
	Book(ctx context.Context, in BookInput) (*model.Appointment, error)
	List(ctx context.Context) ([]model.Appointment, error)
	ListToday(ctx context.Context) ([]model.Appointment, error)
	ListUpcoming(ctx context.Context) ([]model.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*model.Appointment, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type appointmentService struct {
	repo repository.AppointmentRepository
	loc  *time.Location
	now  func() time.Time
}

// NewAppointmentService creates a new appointment service. Dates and day
// windows are interpreted in loc; nil means the server's local zone.
func NewAppointmentService(repo repository.AppointmentRepository, loc *time.Location) AppointmentService {
	if loc == nil {
		loc = time.Local
	}
	return &appointmentService{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// Book stores a new appointment. The doctor is not looked up and overlapping
// bookings are accepted.
func (s *appointmentService) Book(ctx context.Context, in BookInput) (*model.Appointment, error) {
	if blank(in.DoctorID) || blank(in.PatientName) || blank(in.Date) || blank(in.Time) {
		return nil, apperrors.ErrMissingFields
	}

	doctorID, err := uuid.Parse(strings.TrimSpace(in.DoctorID))
	if err != nil {
		return nil, fmt.Errorf("doctorId: %w", apperrors.ErrInvalidID)
	}

	at, err := calendar.Combine(in.Date, in.Time, s.loc)
	if err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		DoctorID:    doctorID,
		PatientName: in.PatientName,
		DateTime:    at,
		Reason:      in.Reason,
		Status:      model.AppointmentStatusScheduled,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) List(ctx context.Context) ([]model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

// ListToday returns appointments between local midnight and the last instant
// of the current day, both inclusive.
func (s *appointmentService) ListToday(ctx context.Context) ([]model.Appointment, error) {
	start, end := calendar.DayBounds(s.now().In(s.loc))
	appointments, err := s.repo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list today's appointments: %w", err)
	}
	return appointments, nil
}

// ListUpcoming returns the next appointments strictly after now, soonest first.
func (s *appointmentService) ListUpcoming(ctx context.Context) ([]model.Appointment, error) {
	appointments, err := s.repo.ListAfter(ctx, s.now().In(s.loc), UpcomingAppointmentsLimit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming appointments: %w", err)
	}
	return appointments, nil
}

func (s *appointmentService) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*model.Appointment, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Date != nil && in.Time != nil {
		at, err := calendar.Combine(*in.Date, *in.Time, s.loc)
		if err != nil {
			return nil, err
		}
		fields["date_time"] = at
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Reason != nil {
		fields["reason"] = *in.Reason
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return s.find(ctx, id)
}

// Cancel hard-deletes the appointment.
func (s *appointmentService) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAppointmentNotFound
		}
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

func (s *appointmentService) find(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return appointment, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
