package service

import (
	"context"
	"fmt"

	"clinicdesk/internal/model"
	"clinicdesk/internal/repository"
)

// RecentPatientsLimit caps the recent patients listing.
const RecentPatientsLimit = 5

// PatientService exposes patient queries.
type PatientService interface {
	ListPatients(ctx context.Context) ([]model.Patient, error)
	ListRecentPatients(ctx context.Context) ([]model.Patient, error)
}

type patientService struct {
	repo repository.PatientRepository
}

// NewPatientService builds a PatientService.
func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) ListPatients(ctx context.Context) ([]model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *patientService) ListRecentPatients(ctx context.Context) ([]model.Patient, error) {
	patients, err := s.repo.ListRecent(ctx, RecentPatientsLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent patients: %w", err)
	}
	return patients, nil
}
