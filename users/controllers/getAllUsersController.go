package controllers

import (
	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (uc *UserController) GetAllUsersController(c *fiber.Ctx) error {
	users, err := uc.UserRepo.GetAllUsers()
	if err != nil {
		config.Logger.Error("Failed to fetch users", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":  users,
		"total": len(users),
	})
}
