package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/GeyzonErik/liz-agenda/controllers"
	"github.com/GeyzonErik/liz-agenda/cron"
	"github.com/GeyzonErik/liz-agenda/db"
	"github.com/GeyzonErik/liz-agenda/repository"
	"github.com/GeyzonErik/liz-agenda/routes"
	"github.com/GeyzonErik/liz-agenda/session"
)

func main() {
	app := fiber.New()
	db.Init()

	redisClient, err := session.NewClient()
	if err != nil {
		log.Fatal(err)
	}
	controllers.Sessions = session.NewStore(redisClient)
	controllers.Appointments = repository.NewGormAppointmentRepository(db.DB)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Liz Agenda")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupCalendarRoutes(app)
	routes.SetupCatalogRoutes(app)

	cron.StartReminderJobs(controllers.Appointments)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
