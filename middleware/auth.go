package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"guitar-learning-system/services"
	"guitar-learning-system/utils"
)

// UserContextMiddleware verifies the Bearer token, rejects revoked
// sessions, and attaches user_id and token_id to the request context.
func UserContextMiddleware(sessions *services.SessionService, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}
		tokenString := strings.TrimPrefix(auth, "Bearer ")

		claims, err := utils.ParseAccessToken(tokenString, jwtSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
				"cause": err.Error(),
			})
		}

		if claims.TokenID != "" && !sessions.SessionValid(claims.TokenID) {
			log.Printf("❌ [auth] revoked or expired session for user %s", claims.UserID)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "session revoked",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("token_id", claims.TokenID)
		return c.Next()
	}
}
