// Package calendar computes the agenda's derived views: day buckets for the
// month/week/day calendar, the fixed half-hour slot grid, drag-and-drop move
// computation and conflict detection. Everything here is a pure function of an
// appointment snapshot and a reference time; nothing is persisted.
package calendar

import (
	"sort"
	"time"

	"github.com/GeyzonErik/liz-agenda/models"
)

type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// MonthGridDays is the fixed size of the month view: 6 full weeks.
const MonthGridDays = 42

// CalendarDay pairs a date with the appointments starting on it. Recomputed on
// every render pass, never stored.
type CalendarDay struct {
	Date           time.Time            `json:"date"`
	IsCurrentMonth bool                 `json:"is_current_month"`
	Appointments   []models.Appointment `json:"appointments"`
}

// SameDate reports whether a and b fall on the same calendar date in local
// wall-clock terms. This is the bucketing key everywhere: an appointment that
// spans midnight belongs only to its start date.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthDays returns the 42-day grid for ref's month: 6 contiguous weeks
// starting at the Sunday on or before the 1st, spilling into the adjacent
// months as needed. Days outside ref's month carry IsCurrentMonth=false.
func MonthDays(ref time.Time, appts []models.Appointment) []CalendarDay {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]CalendarDay, 0, MonthGridDays)
	for i := 0; i < MonthGridDays; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, CalendarDay{
			Date:           date,
			IsCurrentMonth: date.Month() == ref.Month(),
			Appointments:   DayAppointments(date, appts),
		})
	}
	return days
}

// WeekDays returns the 7 days of ref's week, anchored at the Sunday on or
// before ref.
func WeekDays(ref time.Time, appts []models.Appointment) []CalendarDay {
	start := midnight(ref).AddDate(0, 0, -int(ref.Weekday()))

	days := make([]CalendarDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, CalendarDay{
			Date:           date,
			IsCurrentMonth: true,
			Appointments:   DayAppointments(date, appts),
		})
	}
	return days
}

// DayAppointments filters the appointments starting on date, sorted ascending
// by start time. An empty snapshot yields an empty bucket, never an error.
func DayAppointments(date time.Time, appts []models.Appointment) []models.Appointment {
	day := make([]models.Appointment, 0)
	for _, a := range appts {
		if SameDate(a.StartTime, date) {
			day = append(day, a)
		}
	}
	sort.SliceStable(day, func(i, j int) bool {
		return day[i].StartTime.Before(day[j].StartTime)
	})
	return day
}
