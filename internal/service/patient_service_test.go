package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clinicdesk/internal/model"
)

func TestPatientService_ListPatients(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	patients := []model.Patient{{Name: "Alice"}, {Name: "Bob"}}
	mockRepo.On("List", mock.Anything).Return(patients, nil)

	got, err := NewPatientService(mockRepo).ListPatients(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, patients, got)
	mockRepo.AssertExpectations(t)
}

func TestPatientService_ListRecentPatients_UsesLimit(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	mockRepo.On("ListRecent", mock.Anything, 5).Return([]model.Patient{}, nil)

	got, err := NewPatientService(mockRepo).ListRecentPatients(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, got)
	mockRepo.AssertExpectations(t)
}

func TestPatientService_WrapsErrors(t *testing.T) {
	dbErr := errors.New("too many connections")
	mockRepo := new(MockPatientRepository)
	mockRepo.On("List", mock.Anything).Return(nil, dbErr)
	mockRepo.On("ListRecent", mock.Anything, 5).Return(nil, dbErr)
	service := NewPatientService(mockRepo)

	_, err := service.ListPatients(context.Background())
	assert.ErrorIs(t, err, dbErr)

	_, err = service.ListRecentPatients(context.Background())
	assert.ErrorIs(t, err, dbErr)
}
