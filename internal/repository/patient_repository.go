package repository

import (
	"context"

	"gorm.io/gorm"

	"clinicdesk/internal/model"
)

// PatientRepository defines patient persistence operations.
type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	List(ctx context.Context) ([]model.Patient, error)
	ListRecent(ctx context.Context, limit int) ([]model.Patient, error)
}

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository.
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

// withDoctor resolves userId with a second query that never reads the
// password column.
func withDoctor(db *gorm.DB) *gorm.DB {
	return db.Preload("Doctor", func(tx *gorm.DB) *gorm.DB {
		return tx.Omit("password")
	})
}

// Create inserts a patient record.
func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	return r.db.WithContext(ctx).Omit("Doctor").Create(patient).Error
}

// List returns all patients in storage order, each joined to its doctor.
func (r *patientRepository) List(ctx context.Context) ([]model.Patient, error) {
	patients := []model.Patient{}
	if err := withDoctor(r.db.WithContext(ctx)).Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// ListRecent returns at most limit patients, most recent visit first.
func (r *patientRepository) ListRecent(ctx context.Context, limit int) ([]model.Patient, error) {
	patients := []model.Patient{}
	if err := recentQuery(r.db.WithContext(ctx), limit).Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func recentQuery(db *gorm.DB, limit int) *gorm.DB {
	return db.Order("last_visit DESC").Limit(limit)
}
