package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GeyzonErik/liz-agenda/calendar"
	"github.com/GeyzonErik/liz-agenda/models"
	"github.com/GeyzonErik/liz-agenda/repository"
	"github.com/GeyzonErik/liz-agenda/utils"
)

// Appointments is the store the handlers talk to. main wires the GORM
// implementation; tests swap in the in-memory one.
var Appointments repository.AppointmentRepository

const conflictMessage = "Conflito de horário! Já existe um agendamento para este profissional neste horário."

// maxRangeBound stands in for a missing "to" bound on range queries.
var maxRangeBound = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// GetAllAppointments returns the full agenda, optionally narrowed with
// from/to query params (RFC 3339 or YYYY-MM-DD). Either bound may be
// given alone for an open-ended range.
func GetAllAppointments(c *fiber.Ctx) error {
	from, okFrom, err := parseTimeParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid from parameter",
			Error:   err.Error(),
		})
	}
	to, okTo, err := parseTimeParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid to parameter",
			Error:   err.Error(),
		})
	}

	var appointments []models.Appointment
	if okFrom || okTo {
		if !okFrom {
			from = time.Time{}
		}
		if !okTo {
			to = maxRangeBound
		}
		appointments, err = Appointments.ListRange(c.Context(), from, to)
	} else {
		appointments, err = Appointments.List(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}

// GetAppointment returns one appointment by id.
func GetAppointment(c *fiber.Ctx) error {
	appointment, err := Appointments.Get(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// CreateAppointment books a new appointment, rejecting it when the interval
// overlaps another appointment of the same professional on that date.
func CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if appointment.ClientName == "" || appointment.TherapistID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "client_name and therapist_id are required",
		})
	}
	if !appointment.StartTime.Before(appointment.EndTime) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "start_time must be before end_time",
		})
	}
	if appointment.Status != "" && !models.ValidStatus(appointment.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status",
		})
	}

	existing, err := Appointments.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check availability",
			Error:   err.Error(),
		})
	}
	if calendar.HasConflict(existing, appointment.StartTime, appointment.StartTime, appointment.EndTime, appointment.TherapistID, "") {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: conflictMessage,
		})
	}

	if userID, ok := c.Locals("userID").(uint); ok {
		appointment.CreatedBy = strconv.FormatUint(uint64(userID), 10)
	}

	if err := Appointments.Create(c.Context(), &appointment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

type updateAppointmentInput struct {
	ClientName  *string                   `json:"client_name"`
	ClientPhone *string                   `json:"client_phone"`
	TherapistID *string                   `json:"therapist_id"`
	StartTime   *time.Time                `json:"start_time"`
	EndTime     *time.Time                `json:"end_time"`
	Status      *models.AppointmentStatus `json:"status"`
	Notes       *string                   `json:"notes"`
	ProcedureID *string                   `json:"procedure_id"`
}

// UpdateAppointment applies a partial update to an appointment.
func UpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var input updateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Status != nil && !models.ValidStatus(*input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status",
		})
	}

	if input.StartTime != nil || input.EndTime != nil {
		existing, err := Appointments.Get(c.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Appointment not found",
				Error:   err.Error(),
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to fetch appointment",
				Error:   err.Error(),
			})
		}
		start, end := existing.StartTime, existing.EndTime
		if input.StartTime != nil {
			start = *input.StartTime
		}
		if input.EndTime != nil {
			end = *input.EndTime
		}
		if !start.Before(end) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "start_time must be before end_time",
			})
		}
	}

	update := repository.AppointmentUpdate{
		ClientName:  input.ClientName,
		ClientPhone: input.ClientPhone,
		TherapistID: input.TherapistID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Status:      input.Status,
		Notes:       input.Notes,
		ProcedureID: input.ProcedureID,
	}
	if err := Appointments.Update(c.Context(), id, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Appointment not found",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	appointment, err := Appointments.Get(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

type updateStatusInput struct {
	Status models.AppointmentStatus `json:"status"`
}

// UpdateAppointmentStatus sets the appointment status. Any status may change
// to any other.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var input updateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if !models.ValidStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status",
		})
	}

	err := Appointments.Update(c.Context(), id, repository.AppointmentUpdate{Status: &input.Status})
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update status",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAppointment removes an appointment by id.
func DeleteAppointment(c *fiber.Ctx) error {
	err := Appointments.Delete(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type rescheduleInput struct {
	TargetDate string `json:"target_date"`
	TimeSlot   string `json:"time_slot"`
}

// RescheduleAppointment moves an appointment to a new date (and optionally to
// a grid slot), preserving its duration. The move is discarded with a 409 if
// the new interval conflicts with another appointment of the same
// professional on that date; nothing is written in that case.
func RescheduleAppointment(c *fiber.Ctx) error {
	id := c.Params("id")

	var input rescheduleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	targetDate, err := time.ParseInLocation("2006-01-02", input.TargetDate, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid target_date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}

	appointment, err := Appointments.Get(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}

	newStart, newEnd, err := calendar.ComputeMove(*appointment, targetDate, input.TimeSlot)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid time_slot, expected HH:MM",
			Error:   err.Error(),
		})
	}

	existing, err := Appointments.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check availability",
			Error:   err.Error(),
		})
	}
	if calendar.HasConflict(existing, targetDate, newStart, newEnd, appointment.TherapistID, appointment.ID) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: conflictMessage,
		})
	}

	update := repository.AppointmentUpdate{StartTime: &newStart, EndTime: &newEnd}
	if err := Appointments.Update(c.Context(), id, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reschedule appointment",
			Error:   err.Error(),
		})
	}

	appointment, err = Appointments.Get(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointment)
}

// GetAppointmentReminder returns the WhatsApp reminder payload for the
// appointment: the templated message and the wa.me deep link.
func GetAppointmentReminder(c *fiber.Ctx) error {
	appointment, err := Appointments.Get(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment",
			Error:   err.Error(),
		})
	}

	link, err := utils.WhatsAppURL(*appointment)
	if errors.Is(err, utils.ErrNoPhone) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(utils.ErrorResponse{
			Message: "Número de telefone não encontrado",
			Error:   err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to build reminder link",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":      utils.ReminderMessage(*appointment),
		"whatsapp_url": link,
	})
}

// parseTimeParam accepts RFC 3339 timestamps or plain dates.
func parseTimeParam(v string) (time.Time, bool, error) {
	if v == "" {
		return time.Time{}, false, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true, nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.Local)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
