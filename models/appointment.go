package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPendente   AppointmentStatus = "pendente"
	StatusConfirmado AppointmentStatus = "confirmado"
	StatusCancelado  AppointmentStatus = "cancelado"
)

// ValidStatus reports whether s is one of the known appointment statuses.
// Any status may transition to any other, so this is the only status rule.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPendente, StatusConfirmado, StatusCancelado:
		return true
	}
	return false
}

type Appointment struct {
	ID          string            `json:"id" gorm:"primaryKey"`
	ClientName  string            `json:"client_name"`
	ClientPhone string            `json:"client_phone,omitempty"`
	TherapistID string            `json:"therapist_id"`
	Therapist   Professional      `json:"therapist,omitempty" gorm:"foreignKey:TherapistID"`
	StartTime   time.Time         `json:"start_time"`
	EndTime     time.Time         `json:"end_time"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	ProcedureID *string           `json:"procedure_id,omitempty"`
	CreatedBy   string            `json:"created_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusPendente
	}
	return nil
}

// Duration is the exact booked length of the appointment.
func (a *Appointment) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// TherapistName returns the preloaded professional's name, falling back to the
// same placeholder the agenda shows when the professional record is missing.
func (a *Appointment) TherapistName() string {
	if a.Therapist.Name != "" {
		return a.Therapist.Name
	}
	return "Profissional não encontrado"
}
