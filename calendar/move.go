package calendar

import (
	"errors"
	"time"

	"github.com/GeyzonErik/liz-agenda/models"
)

// ErrInvalidSlot is returned when a reschedule names a slot that is not a
// valid HH:MM time.
var ErrInvalidSlot = errors.New("invalid time slot")

// ComputeMove translates a drag of appointment a onto targetDate into a new
// interval, preserving the original duration exactly. With a non-empty slot
// (week/day views) the new start is anchored at that time of day; without one
// (month view) the original time of day is kept and only the date changes.
//
// The result is a proposal: callers must run it through HasConflict before
// asking the store to persist it.
func ComputeMove(a models.Appointment, targetDate time.Time, slot string) (newStart, newEnd time.Time, err error) {
	duration := a.EndTime.Sub(a.StartTime)

	if slot != "" {
		t, perr := time.Parse("15:04", slot)
		if perr != nil {
			return time.Time{}, time.Time{}, ErrInvalidSlot
		}
		newStart = time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(),
			t.Hour(), t.Minute(), 0, 0, targetDate.Location())
	} else {
		orig := a.StartTime
		newStart = time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(),
			orig.Hour(), orig.Minute(), orig.Second(), orig.Nanosecond(), targetDate.Location())
	}

	return newStart, newStart.Add(duration), nil
}
