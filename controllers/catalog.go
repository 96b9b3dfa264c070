package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GeyzonErik/liz-agenda/db"
	"github.com/GeyzonErik/liz-agenda/models"
	"github.com/GeyzonErik/liz-agenda/utils"
)

// GetAllProfessionals lists the practice's professionals ordered by name.
func GetAllProfessionals(c *fiber.Ctx) error {
	var professionals []models.Professional
	if err := db.DB.Order("name").Find(&professionals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch professionals",
			Error:   err.Error(),
		})
	}
	return c.JSON(professionals)
}

// CreateProfessional registers a new professional.
func CreateProfessional(c *fiber.Ctx) error {
	var professional models.Professional
	if err := c.BodyParser(&professional); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if professional.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name is required",
		})
	}
	if err := db.DB.Create(&professional).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create professional",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(professional)
}

// GetAllProcedures lists the bookable procedures ordered by name.
func GetAllProcedures(c *fiber.Ctx) error {
	var procedures []models.Procedure
	if err := db.DB.Order("name").Find(&procedures).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch procedures",
			Error:   err.Error(),
		})
	}
	return c.JSON(procedures)
}

// CreateProcedure registers a new procedure.
func CreateProcedure(c *fiber.Ctx) error {
	var procedure models.Procedure
	if err := c.BodyParser(&procedure); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if procedure.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name is required",
		})
	}
	if err := db.DB.Create(&procedure).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create procedure",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(procedure)
}
