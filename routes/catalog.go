package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GeyzonErik/liz-agenda/controllers"
	"github.com/GeyzonErik/liz-agenda/middleware"
)

// SetupCatalogRoutes configures the professional and procedure lookups
func SetupCatalogRoutes(app *fiber.App) {
	professionals := app.Group("/professionals")
	professionals.Get("/", controllers.GetAllProfessionals)
	professionals.Post("/", middleware.Protected(), controllers.CreateProfessional)

	procedures := app.Group("/procedures")
	procedures.Get("/", controllers.GetAllProcedures)
	procedures.Post("/", middleware.Protected(), controllers.CreateProcedure)
}
