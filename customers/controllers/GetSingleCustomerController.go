package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetSingleCustomerController returns one customer by id
func (cc *CustomerController) GetSingleCustomerController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid customer id",
		})
	}

	customer, err := cc.CustomerRepo.GetCustomerByID(uint(id))
	if err != nil {
		config.Logger.Error("Failed to get customer", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve customer",
		})
	}
	if customer == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Customer not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Customer retrieved successfully",
		"data":    customer,
	})
}
