package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/GeyzonErik/liz-agenda/models"
)

// GormAppointmentRepository persists appointments in Postgres through GORM.
type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Therapist").
		Order("start_time asc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) ListRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Therapist").
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time asc").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) Get(ctx context.Context, id string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Therapist").
		First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *GormAppointmentRepository) Create(ctx context.Context, a *models.Appointment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *GormAppointmentRepository) Update(ctx context.Context, id string, u AppointmentUpdate) error {
	fields := map[string]interface{}{}
	if u.ClientName != nil {
		fields["client_name"] = *u.ClientName
	}
	if u.ClientPhone != nil {
		fields["client_phone"] = *u.ClientPhone
	}
	if u.TherapistID != nil {
		fields["therapist_id"] = *u.TherapistID
	}
	if u.StartTime != nil {
		fields["start_time"] = *u.StartTime
	}
	if u.EndTime != nil {
		fields["end_time"] = *u.EndTime
	}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	if u.Notes != nil {
		fields["notes"] = *u.Notes
	}
	if u.ProcedureID != nil {
		fields["procedure_id"] = *u.ProcedureID
	}
	if len(fields) == 0 {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where("id = ?", id).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormAppointmentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Appointment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
