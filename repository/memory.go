package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GeyzonErik/liz-agenda/models"
)

// MemoryAppointmentRepository keeps appointments in a map. It exists for tests
// and local development; it implements the same contract as the GORM store.
type MemoryAppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[string]models.Appointment
}

func NewMemoryAppointmentRepository() *MemoryAppointmentRepository {
	return &MemoryAppointmentRepository{appointments: make(map[string]models.Appointment)}
}

func (r *MemoryAppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, a)
	}
	sortByStart(out)
	return out, nil
}

func (r *MemoryAppointmentRepository) ListRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, a := range r.appointments {
		if !a.StartTime.Before(from) && a.StartTime.Before(to) {
			out = append(out, a)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *MemoryAppointmentRepository) Get(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (r *MemoryAppointmentRepository) Create(ctx context.Context, a *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = models.StatusPendente
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.appointments[a.ID] = *a
	return nil
}

func (r *MemoryAppointmentRepository) Update(ctx context.Context, id string, u AppointmentUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.appointments[id]
	if !ok {
		return ErrNotFound
	}
	if u.ClientName != nil {
		a.ClientName = *u.ClientName
	}
	if u.ClientPhone != nil {
		a.ClientPhone = *u.ClientPhone
	}
	if u.TherapistID != nil {
		a.TherapistID = *u.TherapistID
	}
	if u.StartTime != nil {
		a.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		a.EndTime = *u.EndTime
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
	if u.ProcedureID != nil {
		a.ProcedureID = u.ProcedureID
	}
	a.UpdatedAt = time.Now()
	r.appointments[id] = a
	return nil
}

func (r *MemoryAppointmentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

func sortByStart(appts []models.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		return appts[i].StartTime.Before(appts[j].StartTime)
	})
}
