package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor represents a clinician who can log in and own appointments.
type Doctor struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string    `json:"name" gorm:"size:255"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"column:password;size:255"` // Never expose in JSON
	Specialization string    `json:"specialization" gorm:"size:255"`
	Phone          string    `json:"phone" gorm:"size:50"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DoctorContact is the projection of a doctor embedded in appointment listings.
type DoctorContact struct {
	ID    uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// TableName maps the projection onto the doctors table.
func (DoctorContact) TableName() string {
	return "doctors"
}
