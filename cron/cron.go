package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/GeyzonErik/liz-agenda/models"
	"github.com/GeyzonErik/liz-agenda/repository"
	"github.com/GeyzonErik/liz-agenda/utils"
)

var appointments repository.AppointmentRepository

// StartReminderJobs starts the scheduler that nudges professionals about
// confirmed appointments starting within the next hour.
func StartReminderJobs(repo repository.AppointmentRepository) {
	appointments = repo

	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for appointments and sends reminders
func sendAppointmentReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	// Look for appointments starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	upcoming, err := appointments.ListRange(ctx, startWindow, endWindow)
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range upcoming {
		if appointment.Status != models.StatusConfirmado {
			continue
		}

		// The client reminder goes out over WhatsApp from the front desk;
		// surface the ready-made link for it.
		if link, err := utils.WhatsAppURL(appointment); err == nil {
			log.Printf("WhatsApp reminder ready for appointment %s: %s", appointment.ID, link)
		}

		if appointment.Therapist.Email == "" {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %s: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %s to %s", appointment.ID, appointment.Therapist.Email)
	}
}

// sendReminderEmail tells the professional about the upcoming appointment
func sendReminderEmail(appointment *models.Appointment) error {
	subject := fmt.Sprintf("Lembrete: atendimento de %s em uma hora", appointment.ClientName)
	body := fmt.Sprintf(`
		<p>Olá %s,</p>
		<p>Você tem um atendimento começando em uma hora.</p>
		<ul>
			<li><strong>Cliente:</strong> %s</li>
			<li><strong>Data:</strong> %s</li>
			<li><strong>Horário:</strong> %s - %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
	`, appointment.TherapistName(), appointment.ClientName,
		utils.FormatReminderDate(appointment.StartTime),
		appointment.StartTime.Format("15:04"),
		appointment.EndTime.Format("15:04"),
		appointment.Status)

	return utils.SendEmail(appointment.Therapist.Email, subject, body)
}
