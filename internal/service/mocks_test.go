package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"clinicdesk/internal/model"
)

// MockDoctorRepository is a mock implementation of DoctorRepository.
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Doctor), args.Error(1)
}

// MockPatientRepository is a mock implementation of PatientRepository.
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) List(ctx context.Context) ([]model.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientRepository) ListRecent(ctx context.Context, limit int) ([]model.Patient, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAppointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]model.Appointment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListAfter(ctx context.Context, after time.Time, limit int) ([]model.Appointment, error) {
	args := m.Called(ctx, after, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) bool {
	args := m.Called(ctx, tokenID)
	return args.Bool(0)
}

// memAppointments is an in-memory AppointmentRepository that mirrors the
// SQL semantics closely enough to exercise the service end to end.
type memAppointments struct {
	mu   sync.Mutex
	rows []model.Appointment
}

func (r *memAppointments) Create(_ context.Context, a *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.rows = append(r.rows, *a)
	return nil
}

func (r *memAppointments) FindByID(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.rows {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memAppointments) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID != id {
			continue
		}
		if v, ok := fields["date_time"]; ok {
			r.rows[i].DateTime = v.(time.Time)
		}
		if v, ok := fields["status"]; ok {
			r.rows[i].Status = v.(string)
		}
		if v, ok := fields["reason"]; ok {
			r.rows[i].Reason = v.(string)
		}
	}
	return nil
}

func (r *memAppointments) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.rows {
		if a.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memAppointments) List(_ context.Context) ([]model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Appointment{}, r.rows...), nil
}

func (r *memAppointments) ListBetween(_ context.Context, from, to time.Time) ([]model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Appointment{}
	for _, a := range r.rows {
		if !a.DateTime.Before(from) && !a.DateTime.After(to) {
			out = append(out, a)
		}
	}
	sortByDateTime(out)
	return out, nil
}

func (r *memAppointments) ListAfter(_ context.Context, after time.Time, limit int) ([]model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Appointment{}
	for _, a := range r.rows {
		if a.DateTime.After(after) {
			out = append(out, a)
		}
	}
	sortByDateTime(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortByDateTime(rows []model.Appointment) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DateTime.Before(rows[j].DateTime)
	})
}
