package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient is a person under a doctor's care.
type Patient struct {
	ID               uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID           *uuid.UUID `json:"userId" gorm:"type:char(36);index"`
	Name             string     `json:"name" gorm:"size:255"`
	Age              int        `json:"age"`
	Condition        string     `json:"condition" gorm:"size:255"`
	OngoingTreatment string     `json:"ongoingTreatment" gorm:"size:255"`
	LastVisit        *time.Time `json:"lastVisit" gorm:"index"`
	Status           string     `json:"status" gorm:"size:50"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	// Relations
	Doctor *Doctor `json:"doctor,omitempty" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
