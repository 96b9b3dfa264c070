package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/GeyzonErik/liz-agenda/repository"
)

func TestGetCalendar_WeekView(t *testing.T) {
	repo := repository.NewMemoryAppointmentRepository()
	Appointments = repo

	app := newCalendarApp()
	start := time.Date(2026, 2, 10, 9, 0, 0, 0, time.Local)
	seedAppointment(t, repo, "on-grid", "t1", start, start.Add(90*time.Minute))
	offStart := time.Date(2026, 2, 10, 9, 15, 0, 0, time.Local)
	seedAppointment(t, repo, "off-grid", "t1", offStart, offStart.Add(30*time.Minute))

	resp := doJSON(t, app, http.MethodGet, "/calendar?view=week&date=2026-02-10", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		View      string   `json:"view"`
		TimeSlots []string `json:"time_slots"`
		Days      []struct {
			Date  string `json:"date"`
			Slots map[string][]struct {
				ID        string  `json:"id"`
				SlotUnits float64 `json:"slot_units"`
			} `json:"slots"`
		} `json:"days"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(payload.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(payload.Days))
	}
	// 2026-02-10 is a Tuesday; its week starts Sunday 2026-02-08.
	if payload.Days[0].Date != "2026-02-08" {
		t.Fatalf("expected week to start 2026-02-08, got %s", payload.Days[0].Date)
	}
	if len(payload.TimeSlots) != 28 {
		t.Fatalf("expected 28 slot labels, got %d", len(payload.TimeSlots))
	}

	tuesdayIdx := -1
	for i := range payload.Days {
		if payload.Days[i].Date == "2026-02-10" {
			tuesdayIdx = i
		}
	}
	if tuesdayIdx == -1 {
		t.Fatal("reference date missing from week")
	}
	tuesday := payload.Days[tuesdayIdx]

	cards := tuesday.Slots["09:00"]
	if len(cards) != 1 || cards[0].ID != "on-grid" {
		t.Fatalf("expected on-grid appointment at 09:00, got %+v", cards)
	}
	if cards[0].SlotUnits != 3 {
		t.Fatalf("expected 90-minute card to span 3 units, got %v", cards[0].SlotUnits)
	}

	// Off-boundary starts vanish from the slot grid.
	for slot, cs := range tuesday.Slots {
		for _, c := range cs {
			if c.ID == "off-grid" {
				t.Fatalf("off-boundary appointment rendered at slot %s", slot)
			}
		}
	}
}

func TestGetCalendar_MonthView(t *testing.T) {
	repo := repository.NewMemoryAppointmentRepository()
	Appointments = repo
	app := newCalendarApp()

	resp := doJSON(t, app, http.MethodGet, "/calendar?view=month&date=2026-02-15", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Days      []json.RawMessage `json:"days"`
		TimeSlots []string          `json:"time_slots"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Days) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(payload.Days))
	}
	if len(payload.TimeSlots) != 0 {
		t.Fatal("month view should not carry the slot grid")
	}
}

func TestGetCalendar_BadView(t *testing.T) {
	Appointments = repository.NewMemoryAppointmentRepository()
	app := newCalendarApp()

	resp := doJSON(t, app, http.MethodGet, "/calendar?view=year", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func newCalendarApp() *fiber.App {
	app := fiber.New()
	app.Get("/calendar", GetCalendar)
	return app
}
