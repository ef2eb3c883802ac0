package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinicdesk/internal/model"
)

// DoctorRepository defines doctor persistence operations.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*model.Doctor, error)
}

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository builds a GORM-backed repository.
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// FindByEmail matches the email exactly.
func (r *doctorRepository) FindByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}
