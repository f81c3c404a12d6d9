package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetFilteredCustomersController returns a paginated, filtered customer list
func (cc *CustomerController) GetFilteredCustomersController(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	filters := map[string]string{
		"customer_name": c.Query("customer_name"),
	}

	customers, total, err := cc.CustomerRepo.GetFilteredCustomers(limit, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to get filtered customers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve customers",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Customers retrieved successfully",
		"data": fiber.Map{
			"customers": customers,
			"total":     total,
			"limit":     limit,
			"offset":    offset,
		},
	})
}
