package calendar

import (
	"fmt"
	"math"

	"github.com/GeyzonErik/liz-agenda/models"
)

// The grid covers the practice's operating window: 07:00 through 20:30 at
// half-hour granularity, independent of the appointments on screen.
const (
	firstSlotHour = 7
	lastSlotHour  = 20
	slotMinutes   = 30
)

// TimeSlots returns the 28 fixed slot labels ("07:00", "07:30", ... "20:30").
func TimeSlots() []string {
	slots := make([]string, 0, (lastSlotHour-firstSlotHour+1)*2)
	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour), fmt.Sprintf("%02d:30", hour))
	}
	return slots
}

// AppointmentsAtSlot returns the appointments whose start time, truncated to
// HH:MM, equals the slot label exactly. Appointments starting off a half-hour
// boundary or outside the operating window match no slot and are simply absent
// from slot-grouped views. Known display limitation, not an error.
func AppointmentsAtSlot(appts []models.Appointment, slot string) []models.Appointment {
	matched := make([]models.Appointment, 0)
	for _, a := range appts {
		if a.StartTime.Format("15:04") == slot {
			matched = append(matched, a)
		}
	}
	return matched
}

// SlotUnits is the card height of an appointment in 30-minute slot units,
// clamped at a minimum of one unit. A 90-minute appointment spans 3 units, a
// 45-minute one 1.5, a 10-minute one the 1-unit minimum.
func SlotUnits(a models.Appointment) float64 {
	minutes := a.EndTime.Sub(a.StartTime).Minutes()
	return math.Max(1, minutes/slotMinutes)
}
