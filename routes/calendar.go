package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GeyzonErik/liz-agenda/controllers"
)

// SetupCalendarRoutes configures the calendar view route
func SetupCalendarRoutes(app *fiber.App) {
	app.Get("/calendar", controllers.GetCalendar)
}
