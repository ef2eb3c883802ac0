package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatusScheduled is the status of a freshly booked appointment.
const AppointmentStatusScheduled = "scheduled"

// Appointment is a booked visit between a doctor and a patient.
type Appointment struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	DoctorID    uuid.UUID `json:"doctorId" gorm:"type:char(36);not null;index"`
	PatientName string    `json:"patientName" gorm:"size:255"`
	DateTime    time.Time `json:"dateTime" gorm:"index"`
	Reason      string    `json:"reason" gorm:"type:text"`
	Status      string    `json:"status" gorm:"size:50;default:'scheduled'"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Doctor *DoctorContact `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
}

// BeforeCreate sets UUID and default status before creating the record.
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = AppointmentStatusScheduled
	}
	return nil
}
