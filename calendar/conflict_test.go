package calendar

import (
	"testing"
	"time"

	"github.com/GeyzonErik/liz-agenda/models"
)

func TestHasConflict(t *testing.T) {
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	existing := []models.Appointment{
		appt("e1", "t1", at(9, 0), at(10, 0)),
	}

	t.Run("overlap conflicts", func(t *testing.T) {
		if !HasConflict(existing, day, at(9, 30), at(10, 30), "t1", "") {
			t.Fatal("expected conflict for 09:30-10:30 against 09:00-10:00")
		}
	})

	t.Run("touching boundary does not conflict", func(t *testing.T) {
		if HasConflict(existing, day, at(10, 0), at(11, 0), "t1", "") {
			t.Fatal("expected no conflict when new start touches existing end")
		}
		if HasConflict(existing, day, at(8, 0), at(9, 0), "t1", "") {
			t.Fatal("expected no conflict when new end touches existing start")
		}
	})

	t.Run("different therapist does not conflict", func(t *testing.T) {
		if HasConflict(existing, day, at(9, 30), at(10, 30), "t2", "") {
			t.Fatal("expected no conflict for a different therapist")
		}
	})

	t.Run("different date does not conflict", func(t *testing.T) {
		nextDay := day.AddDate(0, 0, 1)
		if HasConflict(existing, nextDay, nextDay.Add(9*time.Hour+30*time.Minute), nextDay.Add(10*time.Hour+30*time.Minute), "t1", "") {
			t.Fatal("expected no conflict on another date")
		}
	})

	t.Run("moved appointment does not conflict with itself", func(t *testing.T) {
		if HasConflict(existing, day, at(9, 30), at(10, 30), "t1", "e1") {
			t.Fatal("expected excluded appointment to be skipped")
		}
	})

	t.Run("containment conflicts", func(t *testing.T) {
		if !HasConflict(existing, day, at(8, 0), at(11, 0), "t1", "") {
			t.Fatal("expected conflict when new interval contains existing one")
		}
		if !HasConflict(existing, day, at(9, 15), at(9, 45), "t1", "") {
			t.Fatal("expected conflict when new interval sits inside existing one")
		}
	})
}
