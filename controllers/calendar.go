package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GeyzonErik/liz-agenda/calendar"
	"github.com/GeyzonErik/liz-agenda/models"
	"github.com/GeyzonErik/liz-agenda/utils"
)

type appointmentCard struct {
	models.Appointment
	SlotUnits float64 `json:"slot_units"`
}

type calendarCell struct {
	Date           string                       `json:"date"`
	IsCurrentMonth bool                         `json:"is_current_month"`
	Appointments   []models.Appointment         `json:"appointments"`
	Slots          map[string][]appointmentCard `json:"slots,omitempty"`
}

type calendarResponse struct {
	View      calendar.ViewMode `json:"view"`
	Date      string            `json:"date"`
	TimeSlots []string          `json:"time_slots,omitempty"`
	Days      []calendarCell    `json:"days"`
}

// GetCalendar returns the bucketed calendar for ?view=month|week|day around
// ?date (default today). Week and day views additionally carry the half-hour
// slot grid with per-card heights in slot units.
func GetCalendar(c *fiber.Ctx) error {
	view := calendar.ViewMode(c.Query("view", string(calendar.ViewMonth)))
	if view != calendar.ViewMonth && view != calendar.ViewWeek && view != calendar.ViewDay {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid view, expected month, week or day",
		})
	}

	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid date, expected YYYY-MM-DD",
				Error:   err.Error(),
			})
		}
		date = parsed
	}

	appointments, err := Appointments.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	response := calendarResponse{
		View: view,
		Date: date.Format("2006-01-02"),
	}

	var days []calendar.CalendarDay
	switch view {
	case calendar.ViewMonth:
		days = calendar.MonthDays(date, appointments)
	case calendar.ViewWeek:
		days = calendar.WeekDays(date, appointments)
		response.TimeSlots = calendar.TimeSlots()
	case calendar.ViewDay:
		days = []calendar.CalendarDay{{
			Date:           date,
			IsCurrentMonth: true,
			Appointments:   calendar.DayAppointments(date, appointments),
		}}
		response.TimeSlots = calendar.TimeSlots()
	}

	withSlots := view != calendar.ViewMonth
	for _, day := range days {
		cell := calendarCell{
			Date:           day.Date.Format("2006-01-02"),
			IsCurrentMonth: day.IsCurrentMonth,
			Appointments:   day.Appointments,
		}
		if withSlots {
			cell.Slots = slotGrid(day.Appointments)
		}
		response.Days = append(response.Days, cell)
	}

	return c.JSON(response)
}

// slotGrid groups a day's appointments under their starting slot label.
// Appointments off the half-hour grid or outside the operating window appear
// in no slot.
func slotGrid(appts []models.Appointment) map[string][]appointmentCard {
	grid := make(map[string][]appointmentCard)
	for _, slot := range calendar.TimeSlots() {
		matched := calendar.AppointmentsAtSlot(appts, slot)
		if len(matched) == 0 {
			continue
		}
		cards := make([]appointmentCard, 0, len(matched))
		for _, a := range matched {
			cards = append(cards, appointmentCard{Appointment: a, SlotUnits: calendar.SlotUnits(a)})
		}
		grid[slot] = cards
	}
	return grid
}
