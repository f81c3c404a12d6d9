package controllers

import (
	"inspection-backend/config"
	"inspection-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UpdateCustomerController applies partial updates to a customer
func (cc *CustomerController) UpdateCustomerController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid customer id",
		})
	}

	existing, err := cc.CustomerRepo.GetCustomerByID(uint(id))
	if err != nil {
		config.Logger.Error("Failed to load customer for update", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve customer",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Customer not found",
		})
	}

	var payload models.Customer
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if payload.CustomerName != "" {
		existing.CustomerName = payload.CustomerName
	}
	if payload.Address != nil {
		existing.Address = payload.Address
	}
	if payload.ContactName != nil {
		existing.ContactName = payload.ContactName
	}
	if payload.ContactEmail != nil {
		existing.ContactEmail = payload.ContactEmail
	}
	if payload.ContactPhone != nil {
		existing.ContactPhone = payload.ContactPhone
	}

	updated, err := cc.CustomerRepo.UpdateCustomer(nil, existing)
	if err != nil {
		config.Logger.Error("Failed to update customer", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update customer",
		})
	}

	if cc.SearchRepo != nil {
		if err := cc.SearchRepo.IndexCustomer(*updated); err != nil {
			config.Logger.Warn("Failed to re-index customer",
				zap.Uint("customerID", updated.ID), zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Customer updated successfully",
		"data":    updated,
	})
}
