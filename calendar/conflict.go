package calendar

import (
	"time"

	"github.com/GeyzonErik/liz-agenda/models"
)

// HasConflict reports whether the candidate interval [newStart, newEnd)
// overlaps an existing appointment for the same therapist on targetDate's
// calendar date. excludeID skips the appointment being moved so it never
// conflicts with itself. Touching endpoints do not conflict.
//
// This is an advisory, best-effort guard computed over the caller's snapshot:
// it is not transactional and cannot prevent two concurrent editors from
// double-booking.
func HasConflict(appts []models.Appointment, targetDate, newStart, newEnd time.Time, therapistID, excludeID string) bool {
	for _, a := range appts {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if a.TherapistID != therapistID {
			continue
		}
		if !SameDate(a.StartTime, targetDate) {
			continue
		}
		if newStart.Before(a.EndTime) && newEnd.After(a.StartTime) {
			return true
		}
	}
	return false
}
