package controllers

import (
	"inspection-backend/config"
	"inspection-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateCustomerController handles the creation of a new customer.
func (cc *CustomerController) CreateCustomerController(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		config.Logger.Error("Invalid request body for CreateCustomerController", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if customer.CustomerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "customer_name is required",
		})
	}

	created, err := cc.CustomerRepo.CreateCustomer(nil, &customer)
	if err != nil {
		config.Logger.Error("Failed to create customer", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create customer",
		})
	}

	// Index the new customer for search. Indexing failures are logged, not
	// surfaced; the search index is eventually consistent with the DB.
	if cc.SearchRepo != nil {
		if err := cc.SearchRepo.IndexCustomer(*created); err != nil {
			config.Logger.Warn("Failed to index customer",
				zap.Uint("customerID", created.ID), zap.Error(err))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Customer created successfully",
		"data":    created,
	})
}
