package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/GeyzonErik/liz-agenda/models"
)

// ErrNoPhone is returned when a reminder is requested for an appointment
// without a client phone number.
var ErrNoPhone = errors.New("client has no phone number")

var weekdayNames = [7]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

// FormatReminderDate renders a date the way the reminder shows it:
// "segunda-feira, 02/03/2026".
func FormatReminderDate(d time.Time) string {
	return fmt.Sprintf("%s, %02d/%02d/%04d", weekdayNames[d.Weekday()], d.Day(), int(d.Month()), d.Year())
}

// ReminderMessage builds the WhatsApp reminder text. The wording and layout
// are fixed; clients expect exactly this message.
func ReminderMessage(a models.Appointment) string {
	return fmt.Sprintf(
		"Olá %s! Lembrete do seu agendamento:\n📅 Data: %s\n👨‍⚕️ Profissional: %s\n⏰ Horário: %s - %s\n\nAguardamos você!",
		a.ClientName,
		FormatReminderDate(a.StartTime),
		a.TherapistName(),
		a.StartTime.Format("15:04"),
		a.EndTime.Format("15:04"),
	)
}

// WhatsAppURL builds the wa.me deep link for the appointment's client.
// Non-digits are stripped from the stored phone and the Brazilian country
// code is prepended.
func WhatsAppURL(a models.Appointment) (string, error) {
	phone := digitsOnly(a.ClientPhone)
	if phone == "" {
		return "", ErrNoPhone
	}
	return "https://wa.me/55" + phone + "?text=" + url.QueryEscape(ReminderMessage(a)), nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
