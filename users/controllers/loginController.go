package controllers

import (
	"fmt"
	"time"

	"inspection-backend/config"
	"inspection-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginController verifies credentials, issues a paseto token pair and
// stores the refresh token in Redis for single-use rotation.
func (uc *UserController) LoginController(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password are required",
		})
	}

	user, err := uc.UserRepo.GetUserByEmail(req.Email)
	if err != nil {
		config.Logger.Error("Failed to look up user for login", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}
	if user == nil || !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		config.Logger.Warn("Failed login attempt", zap.String("email", req.Email))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	accessToken, err := uc.AppCtx.PasetoMaker.CreateToken(user.Email, accessTokenTTL)
	if err != nil {
		config.Logger.Error("Failed to create access token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}
	refreshToken, err := uc.AppCtx.PasetoMaker.CreateToken(user.Email, refreshTokenTTL)
	if err != nil {
		config.Logger.Error("Failed to create refresh token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	userID := fmt.Sprintf("%d", user.ID)
	if err := uc.AppCtx.RedisClient.Set(uc.AppCtx.Ctx, "refresh_token:"+refreshToken, userID, refreshTokenTTL).Err(); err != nil {
		config.Logger.Error("Failed to store refresh token in Redis", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	middleware.SetAuthCookies(c, accessToken, refreshToken)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"data": fiber.Map{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
			"role":      user.Role,
		},
	})
}
