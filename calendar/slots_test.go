package calendar

import (
	"testing"
	"time"

	"github.com/GeyzonErik/liz-agenda/models"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()

	if len(slots) != 28 {
		t.Fatalf("expected 28 slots, got %d", len(slots))
	}
	if slots[0] != "07:00" {
		t.Fatalf("expected first slot 07:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "20:30" {
		t.Fatalf("expected last slot 20:30, got %s", slots[len(slots)-1])
	}
	if slots[1] != "07:30" || slots[2] != "08:00" {
		t.Fatalf("expected half-hour stepping, got %s, %s", slots[1], slots[2])
	}
}

func TestAppointmentsAtSlot(t *testing.T) {
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	appts := []struct {
		id    string
		start time.Time
	}{
		{"on-boundary", day.Add(9*time.Hour + 30*time.Minute)},
		{"off-boundary", day.Add(9*time.Hour + 15*time.Minute)},
		{"before-window", day.Add(6*time.Hour + 30*time.Minute)},
		{"after-window", day.Add(21 * time.Hour)},
	}

	var list []models.Appointment
	for _, a := range appts {
		list = append(list, appt(a.id, "t1", a.start, a.start.Add(30*time.Minute)))
	}

	matched := AppointmentsAtSlot(list, "09:30")
	if len(matched) != 1 || matched[0].ID != "on-boundary" {
		t.Fatalf("expected only the boundary appointment at 09:30, got %v", ids(matched))
	}

	// Off-boundary and out-of-window starts match no slot at all.
	for _, id := range []string{"off-boundary", "before-window", "after-window"} {
		total := 0
		for _, slot := range TimeSlots() {
			for _, a := range AppointmentsAtSlot(list, slot) {
				if a.ID == id {
					total++
				}
			}
		}
		if total != 0 {
			t.Fatalf("appointment %q matched %d slots, want 0", id, total)
		}
	}
}

func TestSlotUnits(t *testing.T) {
	day := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		minutes int
		want    float64
	}{
		{"90 minutes spans 3 units", 90, 3},
		{"10 minutes clamps to 1 unit", 10, 1},
		{"30 minutes is 1 unit", 30, 1},
		{"45 minutes is 1.5 units", 45, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := appt("x", "t1", day, day.Add(time.Duration(tc.minutes)*time.Minute))
			if got := SlotUnits(a); got != tc.want {
				t.Fatalf("SlotUnits(%dmin) = %v, want %v", tc.minutes, got, tc.want)
			}
		})
	}
}
