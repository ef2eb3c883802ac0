package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinicdesk/internal/model"
)

// AppointmentRepository defines appointment persistence operations.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	// Update writes only the given columns. An empty map is a no-op.
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// Delete hard-deletes the row and returns gorm.ErrRecordNotFound when
	// nothing was removed.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Appointment, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Appointment, error)
	ListAfter(ctx context.Context, after time.Time, limit int) ([]model.Appointment, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// withDoctorContact resolves the doctor reference to {name, email} only.
func withDoctorContact(db *gorm.DB) *gorm.DB {
	return db.Preload("Doctor", func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "email")
	})
}

// Create creates a new appointment record.
func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Omit("Doctor").Create(appointment).Error
}

// FindByID finds an appointment by ID.
func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := withDoctorContact(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List lists all appointments in storage order.
func (r *appointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	appointments := []model.Appointment{}
	if err := withDoctorContact(r.db.WithContext(ctx)).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListBetween lists appointments with from <= date_time <= to.
func (r *appointmentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]model.Appointment, error) {
	appointments := []model.Appointment{}
	if err := betweenQuery(withDoctorContact(r.db.WithContext(ctx)), from, to).
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListAfter lists at most limit appointments strictly after the given
// instant, soonest first.
func (r *appointmentRepository) ListAfter(ctx context.Context, after time.Time, limit int) ([]model.Appointment, error) {
	appointments := []model.Appointment{}
	if err := afterQuery(withDoctorContact(r.db.WithContext(ctx)), after, limit).
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func betweenQuery(db *gorm.DB, from, to time.Time) *gorm.DB {
	return db.Where("date_time >= ? AND date_time <= ?", from, to).Order("date_time ASC")
}

func afterQuery(db *gorm.DB, after time.Time, limit int) *gorm.DB {
	return db.Where("date_time > ?", after).Order("date_time ASC").Limit(limit)
}
