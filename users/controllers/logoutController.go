package controllers

import (
	"inspection-backend/config"
	"inspection-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LogoutController invalidates the refresh token and clears auth cookies
func (uc *UserController) LogoutController(c *fiber.Ctx) error {
	if refreshToken := c.Cookies("refresh_token"); refreshToken != "" {
		if err := uc.AppCtx.RedisClient.Del(uc.AppCtx.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Warn("Failed to delete refresh token on logout", zap.Error(err))
		}
	}

	middleware.ClearAuthCookies(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}
