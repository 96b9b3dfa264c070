package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Procedure is a bookable treatment. Duration is in minutes and only feeds the
// appointment form defaults; the appointment itself stores absolute times.
type Procedure struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Duration    int       `json:"duration,omitempty"`
	Price       float64   `json:"price,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Procedure) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
