package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestComputeMove_WithSlot(t *testing.T) {
	start := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	a := appt("a", "t1", start, start.Add(90*time.Minute))
	target := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)

	newStart, newEnd, err := ComputeMove(a, target, "14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !newStart.Equal(time.Date(2026, 2, 12, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("expected new start 2026-02-12 14:30, got %s", newStart)
	}
	if got, want := newEnd.Sub(newStart), a.Duration(); got != want {
		t.Fatalf("duration not preserved: got %s, want %s", got, want)
	}
}

func TestComputeMove_WithoutSlotKeepsTimeOfDay(t *testing.T) {
	start := time.Date(2026, 2, 10, 9, 15, 0, 0, time.UTC)
	a := appt("a", "t1", start, start.Add(45*time.Minute))
	target := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	newStart, newEnd, err := ComputeMove(a, target, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !newStart.Equal(time.Date(2026, 3, 1, 9, 15, 0, 0, time.UTC)) {
		t.Fatalf("expected time of day preserved, got %s", newStart)
	}
	if got, want := newEnd.Sub(newStart), a.Duration(); got != want {
		t.Fatalf("duration not preserved: got %s, want %s", got, want)
	}
}

func TestComputeMove_AcrossMidnight(t *testing.T) {
	start := time.Date(2026, 2, 10, 23, 30, 0, 0, time.UTC)
	a := appt("a", "t1", start, start.Add(time.Hour))
	target := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

	newStart, newEnd, err := ComputeMove(a, target, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !newEnd.Equal(newStart.Add(time.Hour)) {
		t.Fatalf("expected end to follow start across midnight, got %s", newEnd)
	}
	if !SameDate(newStart, target) {
		t.Fatalf("expected start on target date, got %s", newStart)
	}
}

func TestComputeMove_InvalidSlot(t *testing.T) {
	start := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	a := appt("a", "t1", start, start.Add(time.Hour))

	_, _, err := ComputeMove(a, start, "not-a-time")
	if !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
}
