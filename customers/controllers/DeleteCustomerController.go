package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeleteCustomerController soft-deletes a customer
func (cc *CustomerController) DeleteCustomerController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid customer id",
		})
	}

	if err := cc.CustomerRepo.DeleteCustomer(uint(id)); err != nil {
		config.Logger.Error("Failed to delete customer", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete customer",
		})
	}

	if cc.SearchRepo != nil {
		if err := cc.SearchRepo.DeleteCustomer(uint(id)); err != nil {
			config.Logger.Warn("Failed to remove customer from search index",
				zap.Int("customerID", id), zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Customer deleted successfully",
	})
}
