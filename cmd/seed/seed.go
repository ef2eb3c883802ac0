package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"clinicdesk/internal/auth"
	"clinicdesk/internal/model"
	"clinicdesk/internal/repository"
)

// errDoctorExists is returned when the seed doctor is already present.
var errDoctorExists = errors.New("doctor already exists")

type doctorSeed struct {
	Name           string
	Email          string
	Password       string
	Specialization string
	Phone          string
}

type seeder struct {
	doctors  repository.DoctorRepository
	patients repository.PatientRepository
	log      zerolog.Logger
	now      func() time.Time
}

func (s *seeder) seedDoctor(ctx context.Context, in doctorSeed) (*model.Doctor, error) {
	if _, err := s.doctors.FindByEmail(ctx, in.Email); err == nil {
		return nil, fmt.Errorf("%s: %w", in.Email, errDoctorExists)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up doctor: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	doctor := &model.Doctor{
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   hash,
		Specialization: in.Specialization,
		Phone:          in.Phone,
	}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	s.log.Info().Str("doctor_id", doctor.ID.String()).Str("email", doctor.Email).Msg("doctor created")
	return doctor, nil
}

// seedPatients adds a handful of demo patients under doctor, with visits on
// successive past days so the recent listing has something to order.
func (s *seeder) seedPatients(ctx context.Context, doctor *model.Doctor) error {
	demo := []struct {
		name, condition, treatment, status string
		age                                int
	}{
		{"John Smith", "Hypertension", "Lisinopril 10mg", "stable", 54},
		{"Maria Garcia", "Type 2 diabetes", "Metformin 500mg", "monitoring", 47},
		{"Chen Wei", "Asthma", "Albuterol inhaler", "stable", 29},
		{"Amara Okafor", "Migraine", "Sumatriptan", "improving", 36},
		{"Lucas Martin", "Post-op knee", "Physiotherapy", "recovering", 62},
		{"Sofia Rossi", "Anemia", "Iron supplements", "monitoring", 23},
	}

	today := s.now()
	for i, d := range demo {
		visit := today.AddDate(0, 0, -(i + 1))
		patient := &model.Patient{
			UserID:           &doctor.ID,
			Name:             d.name,
			Age:              d.age,
			Condition:        d.condition,
			OngoingTreatment: d.treatment,
			LastVisit:        &visit,
			Status:           d.status,
		}
		if err := s.patients.Create(ctx, patient); err != nil {
			return fmt.Errorf("create patient %q: %w", d.name, err)
		}
	}
	s.log.Info().Int("count", len(demo)).Msg("demo patients created")
	return nil
}
