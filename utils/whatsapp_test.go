package utils

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/GeyzonErik/liz-agenda/models"
)

func reminderAppointment() models.Appointment {
	// 2026-02-10 is a terça-feira.
	return models.Appointment{
		ID:          "a1",
		ClientName:  "Maria Silva",
		ClientPhone: "(11) 98765-4321",
		Therapist:   models.Professional{Name: "Dra. Liz"},
		StartTime:   time.Date(2026, 2, 10, 14, 0, 0, 0, time.Local),
		EndTime:     time.Date(2026, 2, 10, 15, 30, 0, 0, time.Local),
	}
}

func TestReminderMessage(t *testing.T) {
	want := "Olá Maria Silva! Lembrete do seu agendamento:\n" +
		"📅 Data: terça-feira, 10/02/2026\n" +
		"👨‍⚕️ Profissional: Dra. Liz\n" +
		"⏰ Horário: 14:00 - 15:30\n" +
		"\n" +
		"Aguardamos você!"

	if got := ReminderMessage(reminderAppointment()); got != want {
		t.Fatalf("message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestReminderMessage_MissingTherapist(t *testing.T) {
	a := reminderAppointment()
	a.Therapist = models.Professional{}

	if !strings.Contains(ReminderMessage(a), "Profissional não encontrado") {
		t.Fatal("expected placeholder for missing professional")
	}
}

func TestWhatsAppURL(t *testing.T) {
	link, err := WhatsAppURL(reminderAppointment())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(link, "https://wa.me/5511987654321?text=") {
		t.Fatalf("expected digits-only phone with country code, got %s", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := parsed.Query().Get("text"); got != ReminderMessage(reminderAppointment()) {
		t.Fatalf("escaped text does not round-trip: %q", got)
	}
}

func TestWhatsAppURL_NoPhone(t *testing.T) {
	a := reminderAppointment()
	a.ClientPhone = ""

	if _, err := WhatsAppURL(a); !errors.Is(err, ErrNoPhone) {
		t.Fatalf("expected ErrNoPhone, got %v", err)
	}
}
