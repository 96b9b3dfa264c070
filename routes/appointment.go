package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GeyzonErik/liz-agenda/controllers"
	"github.com/GeyzonErik/liz-agenda/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Get("/", controllers.GetAllAppointments)
	appointment.Get("/:id", controllers.GetAppointment)
	appointment.Get("/:id/reminder", controllers.GetAppointmentReminder)
	appointment.Post("/", middleware.Protected(), controllers.CreateAppointment)
	appointment.Patch("/:id", middleware.Protected(), controllers.UpdateAppointment)
	appointment.Patch("/:id/status", middleware.Protected(), controllers.UpdateAppointmentStatus)
	appointment.Post("/:id/reschedule", middleware.Protected(), controllers.RescheduleAppointment)
	appointment.Delete("/:id", middleware.Protected(), controllers.DeleteAppointment)
}
