package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"guitar-learning-system/services"
	"guitar-learning-system/utils"
)

// SetupRealtimeRoutes wires the websocket relay endpoint. Clients connect
// with ?token=<access token>; the socket is bound to the token's user.
func SetupRealtimeRoutes(app *fiber.App, hub *services.RelayHub, jwtSecret string) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		claims, err := utils.ParseAccessToken(c.Query("token"), jwtSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}
		c.Locals("user_id", claims.UserID)
		return c.Next()
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("user_id").(string)
		hub.HandleConnection(userID, conn)
	}))
}
