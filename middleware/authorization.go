package middleware

import (
	"time"

	"inspection-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// ProtectedRoute verifies the access token cookie, falling back to the
// single-use refresh token held in Redis when the access token has expired.
func ProtectedRoute(ctx *AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := c.Cookies("access_token")
		refreshToken := c.Cookies("refresh_token")

		if accessToken != "" {
			payload, err := ctx.PasetoMaker.VerifyToken(accessToken)
			if err == nil {
				c.Locals("user", payload)
				return c.Next()
			}
			config.Logger.Debug("Invalid access token encountered", zap.Error(err))
		}

		if refreshToken == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Authentication required",
			})
		}

		refreshPayload, err := ctx.PasetoMaker.VerifyToken(refreshToken)
		if err != nil {
			config.Logger.Error("Invalid refresh token verification failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session expired or invalid. Please log in again.",
			})
		}

		userID, err := ctx.RedisClient.Get(ctx.Ctx, "refresh_token:"+refreshToken).Result()
		if err == redis.Nil {
			config.Logger.Warn("Refresh token not found in Redis",
				zap.String("email", refreshPayload.Email))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session invalid. Please log in again.",
			})
		} else if err != nil {
			config.Logger.Error("Error accessing Redis for refresh token validation",
				zap.String("email", refreshPayload.Email), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		// Single-use refresh token: rotate on every use
		if err := ctx.RedisClient.Del(ctx.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Warn("Error deleting old refresh token from Redis",
				zap.String("user_id", userID), zap.Error(err))
		}

		newAccessToken, err := ctx.PasetoMaker.CreateToken(refreshPayload.Email, accessTokenTTL)
		if err != nil {
			config.Logger.Error("Could not generate new access token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		newRefreshToken, err := ctx.PasetoMaker.CreateToken(refreshPayload.Email, refreshTokenTTL)
		if err != nil {
			config.Logger.Error("Could not generate new refresh token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		if err := ctx.RedisClient.Set(ctx.Ctx, "refresh_token:"+newRefreshToken, userID, refreshTokenTTL).Err(); err != nil {
			config.Logger.Error("Error storing new refresh token in Redis", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		SetAuthCookies(c, newAccessToken, newRefreshToken)

		c.Locals("user", refreshPayload)
		return c.Next()
	}
}

// SetAuthCookies writes access and refresh token cookies with matching TTLs
func SetAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   false, // TODO: set true once TLS terminates in front of the app
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Path:     "/",
	})
}

// ClearAuthCookies expires both auth cookies on logout
func ClearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
}
