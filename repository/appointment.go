// Package repository abstracts appointment persistence behind a swappable
// interface: GORM/Postgres in production, in-memory for tests.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/GeyzonErik/liz-agenda/models"
)

// ErrNotFound is returned when no appointment exists for the given id.
var ErrNotFound = errors.New("appointment not found")

// AppointmentUpdate carries a partial update; nil fields are left untouched.
type AppointmentUpdate struct {
	ClientName  *string
	ClientPhone *string
	TherapistID *string
	StartTime   *time.Time
	EndTime     *time.Time
	Status      *models.AppointmentStatus
	Notes       *string
	ProcedureID *string
}

// AppointmentRepository is the store contract the agenda depends on. List
// results are ordered ascending by start time. Implementations do not retry;
// failures propagate to the caller unchanged. Callers own timeouts through
// ctx.
type AppointmentRepository interface {
	List(ctx context.Context) ([]models.Appointment, error)
	ListRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error)
	Get(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, a *models.Appointment) error
	// Update applies the non-nil fields of u. An update with no set fields
	// still reports ErrNotFound for an unknown id.
	Update(ctx context.Context, id string, u AppointmentUpdate) error
	Delete(ctx context.Context, id string) error
}
